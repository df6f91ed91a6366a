package repository_test

import (
	"context"
	"testing"

	"partylink/internal/model"
	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSVPRepository_GetRSVPView(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pool := getTestDB(t)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Tom's 7th Birthday")
		guest := createTestGuest(t, pool, host.ID, event.ID, "Mia", model.InviteMethodWhatsApp)

		view, err := repository.NewRSVPRepository(pool).GetRSVPView(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.Equal(t, guest.InviteToken, view.InviteToken)
		assert.Equal(t, event.ID, view.EventID)
		assert.Equal(t, host.ID, view.HostID)
		assert.Equal(t, "Tom's 7th Birthday", view.EventTitle)
		assert.True(t, event.StartsAt.Equal(view.StartsAt))
		assert.Equal(t, "Mia", view.ChildName)
		assert.Equal(t, model.AttendancePending, view.Status)
		assert.Equal(t, model.InviteStatusNotSent, view.InviteStatus)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		pool := getTestDB(t)

		_, err := repository.NewRSVPRepository(pool).GetRSVPView(ctx, "does-not-exist")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInviteLink)
	})
}

func TestRSVPRepository_SubmitRSVP(t *testing.T) {
	ctx := context.Background()

	t.Run("LastAnswerWins", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewRSVPRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")
		guest := createTestGuest(t, pool, host.ID, event.ID, "Mia", model.InviteMethodManual)

		require.NoError(t, repo.SubmitRSVP(ctx, guest.InviteToken, model.AttendanceNo))
		require.NoError(t, repo.SubmitRSVP(ctx, guest.InviteToken, model.AttendanceYes))

		view, err := repo.GetRSVPView(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.Equal(t, model.AttendanceYes, view.Status)

		// host 端看到同一份 attendance
		row, err := repository.NewInviteRepository(pool).FindGuest(ctx, host.ID, event.ID, guest.InviteToken)
		require.NoError(t, err)
		assert.Equal(t, model.AttendanceYes, row.Attendance)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		pool := getTestDB(t)

		err := repository.NewRSVPRepository(pool).SubmitRSVP(ctx, "does-not-exist", model.AttendanceYes)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInviteLink)
	})
}

func TestRSVPRepository_MarkAcknowledged(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyAfterWhatsAppSent", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewRSVPRepository(pool)
		invites := repository.NewInviteRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")
		guest := createTestGuest(t, pool, host.ID, event.ID, "Mia", model.InviteMethodWhatsApp)

		acked, err := repo.MarkAcknowledged(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.False(t, acked)

		_, err = invites.MarkWhatsAppSent(ctx, host.ID, event.ID, guest.InviteToken)
		require.NoError(t, err)

		acked, err = repo.MarkAcknowledged(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.True(t, acked)

		acked, err = repo.MarkAcknowledged(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.False(t, acked)

		view, err := repo.GetRSVPView(ctx, guest.InviteToken)
		require.NoError(t, err)
		assert.Equal(t, model.InviteStatusAcknowledged, view.InviteStatus)
	})
}
