package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"partylink/internal/cache"
	"partylink/internal/mailer"
	"partylink/internal/model"
	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"
	"partylink/pkg/securetoken"
)

const (
	loginCodeLength    = 6
	magicLinkCodeBytes = 16
)

type AuthService interface {
	// RequestCode 產生驗證碼與 magic link，寄到 host 信箱
	RequestCode(ctx context.Context, email string, next string) error
	VerifyCode(ctx context.Context, email string, code string) (*model.Host, error)
	ExchangeMagicLink(ctx context.Context, code string) (*model.Host, error)
}

type AuthOptions struct {
	CodeTTL     time.Duration
	MaxAttempts int
	BaseURL     string
}

type AuthServiceImpl struct {
	hosts    repository.HostRepository
	otpStore cache.OTPStore
	mailer   mailer.Mailer
	audit    AuditService
	opts     AuthOptions
}

func NewAuthService(
	hosts repository.HostRepository,
	otpStore cache.OTPStore,
	mailer mailer.Mailer,
	audit AuditService,
	opts AuthOptions,
) AuthService {
	if opts.CodeTTL <= 0 {
		opts.CodeTTL = 10 * time.Minute
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	return &AuthServiceImpl{
		hosts:    hosts,
		otpStore: otpStore,
		mailer:   mailer,
		audit:    audit,
		opts:     opts,
	}
}

func (s *AuthServiceImpl) RequestCode(ctx context.Context, email string, next string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.ErrInvalidInput
	}

	code, err := securetoken.Digits(loginCodeLength)
	if err != nil {
		return fmt.Errorf("generate login code: %w", err)
	}
	linkCode, err := securetoken.Hex(magicLinkCodeBytes)
	if err != nil {
		return fmt.Errorf("generate magic link: %w", err)
	}

	if err := s.otpStore.SaveCode(ctx, email, securetoken.Hash(code), s.opts.CodeTTL); err != nil {
		return fmt.Errorf("save login code: %w", err)
	}
	if err := s.otpStore.SaveMagicLink(ctx, securetoken.Hash(linkCode), email, s.opts.CodeTTL); err != nil {
		return fmt.Errorf("save magic link: %w", err)
	}

	msg := mailer.LoginCodeMessage(email, code, s.magicLinkURL(linkCode, next))
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send login code: %w", err)
	}

	s.audit.Record(ctx, model.AuditEntry{
		Action:   model.AuditLoginCodeRequest,
		Entity:   "host",
		EntityID: email,
	})
	return nil
}

func (s *AuthServiceImpl) VerifyCode(ctx context.Context, email string, code string) (*model.Host, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || len(code) != loginCodeLength {
		return nil, apperrors.ErrInvalidCode
	}

	if err := s.otpStore.VerifyCode(ctx, email, securetoken.Hash(code), s.opts.MaxAttempts); err != nil {
		return nil, err
	}
	return s.login(ctx, email, "code")
}

func (s *AuthServiceImpl) ExchangeMagicLink(ctx context.Context, code string) (*model.Host, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.ErrMagicLinkNotFound
	}

	email, err := s.otpStore.ConsumeMagicLink(ctx, securetoken.Hash(code))
	if err != nil {
		return nil, err
	}
	return s.login(ctx, email, "magic_link")
}

func (s *AuthServiceImpl) login(ctx context.Context, email string, method string) (*model.Host, error) {
	host, err := s.hosts.FindOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(host.ID),
		Action:   model.AuditHostLoggedIn,
		Entity:   "host",
		EntityID: host.ID.String(),
		Details:  map[string]any{"method": method},
	})
	return host, nil
}

func (s *AuthServiceImpl) magicLinkURL(code string, next string) string {
	values := url.Values{}
	values.Set("code", code)
	if next != "" {
		values.Set("next", next)
	}
	return strings.TrimRight(s.opts.BaseURL, "/") + "/auth/callback?" + values.Encode()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
