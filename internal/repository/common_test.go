package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"partylink/internal/model"
	"partylink/internal/repository"
	"partylink/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		log.Printf("postgres unavailable, repository tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	testDB = pool
	code := m.Run()
	cleanup()
	os.Exit(code)
}

// getTestDB 每個測試從空表開始
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	testutil.TruncateAll(t, testDB)
	return testDB
}

func createTestHost(t *testing.T, pool *pgxpool.Pool, email string) *model.Host {
	t.Helper()
	host, err := repository.NewHostRepository(pool).FindOrCreateByEmail(context.Background(), email)
	require.NoError(t, err)
	return host
}

func createTestEvent(t *testing.T, pool *pgxpool.Pool, hostID uuid.UUID, title string) *model.Event {
	t.Helper()
	event, err := repository.NewEventRepository(pool).Create(context.Background(), &model.Event{
		HostID:   hostID,
		Title:    title,
		StartsAt: time.Date(2026, 11, 7, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return event
}

func createTestGuest(t *testing.T, pool *pgxpool.Pool, hostID, eventID uuid.UUID, childName string, method model.InviteMethod) *model.GuestRow {
	t.Helper()
	guest, err := repository.NewInviteRepository(pool).CreateInviteWithParticipant(context.Background(), hostID, eventID, model.NewGuestParams{
		ChildName: childName,
		Method:    method,
	})
	require.NoError(t, err)
	return guest
}

func ptr[T any](v T) *T {
	return &v
}
