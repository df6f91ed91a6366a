package service_test

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"
	"time"

	cacheMocks "partylink/internal/cache/mocks"
	"partylink/internal/mailer"
	mailerMocks "partylink/internal/mailer/mocks"
	"partylink/internal/model"
	repoMocks "partylink/internal/repository/mocks"
	"partylink/internal/service"
	apperrors "partylink/pkg/app_errors"
	"partylink/pkg/securetoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var loginCodePattern = regexp.MustCompile(`\b\d{6}\b`)

func setupAuthServiceMocks(t *testing.T) (
	*repoMocks.MockHostRepository,
	*cacheMocks.MockOTPStore,
	*mailerMocks.MockMailer,
	*[]model.AuditAction,
	service.AuthService,
) {
	hosts := repoMocks.NewMockHostRepository(t)
	otp := cacheMocks.NewMockOTPStore(t)
	mail := mailerMocks.NewMockMailer(t)
	audit, actions := expectAudit(t)
	svc := service.NewAuthService(hosts, otp, mail, audit, service.AuthOptions{
		CodeTTL:     10 * time.Minute,
		MaxAttempts: 5,
		BaseURL:     "https://partylink.co/",
	})
	return hosts, otp, mail, actions, svc
}

func TestAuthService_RequestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores hashes and mails the plain code", func(t *testing.T) {
		_, otp, mail, actions, svc := setupAuthServiceMocks(t)

		var codeHash, linkHash string
		otp.EXPECT().SaveCode(ctx, "host@example.com", mock.Anything, 10*time.Minute).
			Run(func(_ context.Context, _ string, hash string, _ time.Duration) { codeHash = hash }).
			Return(nil).Once()
		otp.EXPECT().SaveMagicLink(ctx, mock.Anything, "host@example.com", 10*time.Minute).
			Run(func(_ context.Context, hash string, _ string, _ time.Duration) { linkHash = hash }).
			Return(nil).Once()

		var sent mailer.Message
		mail.EXPECT().Send(ctx, mock.Anything).
			Run(func(_ context.Context, msg mailer.Message) { sent = msg }).
			Return(nil).Once()

		err := svc.RequestCode(ctx, " Host@Example.com ", "/host/events")
		require.NoError(t, err)

		assert.Equal(t, "host@example.com", sent.To)
		code := loginCodePattern.FindString(sent.Text)
		require.NotEmpty(t, code)
		assert.Equal(t, securetoken.Hash(code), codeHash)

		linkRe := regexp.MustCompile(`https://partylink\.co/auth/callback\?\S+`)
		link, err := url.Parse(linkRe.FindString(sent.Text))
		require.NoError(t, err)
		assert.Equal(t, "/host/events", link.Query().Get("next"))
		assert.Equal(t, securetoken.Hash(link.Query().Get("code")), linkHash)

		assert.Equal(t, []model.AuditAction{model.AuditLoginCodeRequest}, *actions)
	})

	t.Run("Mail failure is returned", func(t *testing.T) {
		_, otp, mail, _, svc := setupAuthServiceMocks(t)

		otp.EXPECT().SaveCode(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		otp.EXPECT().SaveMagicLink(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		mail.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp down")).Once()

		err := svc.RequestCode(ctx, "host@example.com", "")
		assert.Error(t, err)
	})

	t.Run("Empty email", func(t *testing.T) {
		_, _, _, _, svc := setupAuthServiceMocks(t)

		err := svc.RequestCode(ctx, " ", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestAuthService_VerifyCode(t *testing.T) {
	ctx := context.Background()
	host := &model.Host{ID: testHostID, Email: "host@example.com"}

	t.Run("Success", func(t *testing.T) {
		hosts, otp, _, actions, svc := setupAuthServiceMocks(t)

		otp.EXPECT().VerifyCode(ctx, "host@example.com", securetoken.Hash("123456"), 5).Return(nil).Once()
		hosts.EXPECT().FindOrCreateByEmail(ctx, "host@example.com").Return(host, nil).Once()

		got, err := svc.VerifyCode(ctx, "HOST@example.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, host, got)
		assert.Equal(t, []model.AuditAction{model.AuditHostLoggedIn}, *actions)
	})

	t.Run("Wrong code", func(t *testing.T) {
		_, otp, _, actions, svc := setupAuthServiceMocks(t)

		otp.EXPECT().VerifyCode(ctx, "host@example.com", securetoken.Hash("000000"), 5).Return(apperrors.ErrInvalidCode).Once()

		_, err := svc.VerifyCode(ctx, "host@example.com", "000000")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
		assert.Empty(t, *actions)
	})

	t.Run("Malformed code never hits the store", func(t *testing.T) {
		_, _, _, _, svc := setupAuthServiceMocks(t)

		_, err := svc.VerifyCode(ctx, "host@example.com", "12")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
	})
}

func TestAuthService_ExchangeMagicLink(t *testing.T) {
	ctx := context.Background()
	host := &model.Host{ID: testHostID, Email: "host@example.com"}

	t.Run("Success", func(t *testing.T) {
		hosts, otp, _, _, svc := setupAuthServiceMocks(t)

		otp.EXPECT().ConsumeMagicLink(ctx, securetoken.Hash("abc")).Return("host@example.com", nil).Once()
		hosts.EXPECT().FindOrCreateByEmail(ctx, "host@example.com").Return(host, nil).Once()

		got, err := svc.ExchangeMagicLink(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, testHostID, got.ID)
	})

	t.Run("Used link", func(t *testing.T) {
		_, otp, _, _, svc := setupAuthServiceMocks(t)

		otp.EXPECT().ConsumeMagicLink(ctx, securetoken.Hash("abc")).Return("", apperrors.ErrMagicLinkNotFound).Once()

		_, err := svc.ExchangeMagicLink(ctx, "abc")
		assert.ErrorIs(t, err, apperrors.ErrMagicLinkNotFound)
	})
}
