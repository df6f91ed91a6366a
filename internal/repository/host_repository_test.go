package repository_test

import (
	"context"
	"testing"

	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRepository_FindOrCreateByEmail(t *testing.T) {
	pool := getTestDB(t)
	repo := repository.NewHostRepository(pool)
	ctx := context.Background()

	first, err := repo.FindOrCreateByEmail(ctx, "  Host@Example.com ")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "host@example.com", first.Email)
	assert.NotZero(t, first.CreatedAt)

	// 同一個 email 再登入拿到同一個 host
	second, err := repo.FindOrCreateByEmail(ctx, "host@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestHostRepository_FindByID(t *testing.T) {
	pool := getTestDB(t)
	repo := repository.NewHostRepository(pool)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		host := createTestHost(t, pool, "found@example.com")

		got, err := repo.FindByID(ctx, host.ID)
		require.NoError(t, err)
		assert.Equal(t, host.Email, got.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrHostNotFound)
	})
}
