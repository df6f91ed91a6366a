package repository_test

import (
	"context"
	"testing"
	"time"

	"partylink/internal/model"
	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	pool := getTestDB(t)
	repo := repository.NewEventRepository(pool)
	host := createTestHost(t, pool, "host@example.com")

	startsAt := time.Date(2026, 11, 7, 14, 0, 0, 0, time.FixedZone("SGT", 8*60*60))
	created, err := repo.Create(context.Background(), &model.Event{
		HostID:       host.ID,
		Title:        "Tom's 7th Birthday",
		StartsAt:     startsAt,
		LocationName: ptr("Jurong Lake Gardens"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, host.ID, created.HostID)
	assert.Equal(t, "Tom's 7th Birthday", created.Title)
	assert.True(t, startsAt.Equal(created.StartsAt))
	require.NotNil(t, created.LocationName)
	assert.Equal(t, "Jurong Lake Gardens", *created.LocationName)
	assert.NotZero(t, created.CreatedAt)
	assert.NotZero(t, created.UpdatedAt)
}

func TestEventRepository_ListByHost(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		pool := getTestDB(t)
		host := createTestHost(t, pool, "host@example.com")

		events, err := repository.NewEventRepository(pool).ListByHost(ctx, host.ID)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("OnlyOwnEventsNewestFirst", func(t *testing.T) {
		pool := getTestDB(t)
		host := createTestHost(t, pool, "host@example.com")
		other := createTestHost(t, pool, "other@example.com")

		a := createTestEvent(t, pool, host.ID, "Party A")
		b := createTestEvent(t, pool, host.ID, "Party B")
		createTestEvent(t, pool, other.ID, "Someone else's party")

		events, err := repository.NewEventRepository(pool).ListByHost(ctx, host.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		// 後建立的在前（created_at DESC）
		assert.Equal(t, b.ID, events[0].ID)
		assert.Equal(t, a.ID, events[1].ID)
	})
}

func TestEventRepository_FindByIDForHost(t *testing.T) {
	pool := getTestDB(t)
	repo := repository.NewEventRepository(pool)
	ctx := context.Background()
	host := createTestHost(t, pool, "host@example.com")
	other := createTestHost(t, pool, "other@example.com")
	event := createTestEvent(t, pool, host.ID, "Party")

	t.Run("Found", func(t *testing.T) {
		got, err := repo.FindByIDForHost(ctx, host.ID, event.ID)
		require.NoError(t, err)
		assert.Equal(t, "Party", got.Title)
	})

	t.Run("OtherHost", func(t *testing.T) {
		_, err := repo.FindByIDForHost(ctx, other.ID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := repo.FindByIDForHost(ctx, host.ID, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewEventRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")

		updated, err := repo.Update(ctx, host.ID, event.ID, model.UpdateEventParams{
			Title:        ptr("Bigger Party"),
			LocationName: ptr("Sentosa"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Bigger Party", updated.Title)
		assert.True(t, event.StartsAt.Equal(updated.StartsAt))
		require.NotNil(t, updated.LocationName)
		assert.Equal(t, "Sentosa", *updated.LocationName)
	})

	t.Run("EmptyLocationClears", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewEventRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")
		_, err := repo.Update(ctx, host.ID, event.ID, model.UpdateEventParams{LocationName: ptr("Sentosa")})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, host.ID, event.ID, model.UpdateEventParams{LocationName: ptr("")})
		require.NoError(t, err)
		assert.Nil(t, updated.LocationName)
	})

	t.Run("NoFields", func(t *testing.T) {
		pool := getTestDB(t)
		_, err := repository.NewEventRepository(pool).Update(ctx, uuid.New(), uuid.New(), model.UpdateEventParams{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("OtherHost", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewEventRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		other := createTestHost(t, pool, "other@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")

		_, err := repo.Update(ctx, other.ID, event.ID, model.UpdateEventParams{Title: ptr("Hijacked")})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("CascadesInvites", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewEventRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")
		guest := createTestGuest(t, pool, host.ID, event.ID, "Mia", model.InviteMethodManual)

		require.NoError(t, repo.Delete(ctx, host.ID, event.ID))

		_, err := repo.FindByIDForHost(ctx, host.ID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

		_, err = repository.NewRSVPRepository(pool).GetRSVPView(ctx, guest.InviteToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInviteLink)
	})

	t.Run("OtherHost", func(t *testing.T) {
		pool := getTestDB(t)
		repo := repository.NewEventRepository(pool)
		host := createTestHost(t, pool, "host@example.com")
		other := createTestHost(t, pool, "other@example.com")
		event := createTestEvent(t, pool, host.ID, "Party")

		err := repo.Delete(ctx, other.ID, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

		_, err = repo.FindByIDForHost(ctx, host.ID, event.ID)
		assert.NoError(t, err)
	})
}
