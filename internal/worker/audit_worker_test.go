package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"partylink/internal/model"
	"partylink/internal/queue"
	queueMocks "partylink/internal/queue/mocks"
	"partylink/internal/service"
	"partylink/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 簡單的 Mock 實作
type mockAuditService struct {
	service.AuditService // 嵌入介面
	onPersist            func(*model.AuditEntry) error
}

func (m *mockAuditService) Persist(ctx context.Context, entry *model.AuditEntry) error {
	return m.onPersist(entry)
}

func TestAuditWorker_PersistsEntries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewAuditQueue(10)

	persisted := make(chan *model.AuditEntry, 1)
	svc := &mockAuditService{
		onPersist: func(entry *model.AuditEntry) error {
			persisted <- entry
			return nil
		},
	}

	w := worker.NewAuditWorker(svc, q)
	require.NoError(t, w.Start(ctx))

	entry := &model.AuditEntry{Action: model.AuditEventCreated, Entity: "event", EntityID: "evt-1"}
	require.NoError(t, q.PublishAudit(ctx, entry))

	select {
	case got := <-persisted:
		assert.Equal(t, entry.EntityID, got.EntityID)
	case <-time.After(time.Second):
		t.Fatal("worker did not persist entry in time")
	}
}

func TestAuditWorker_RetriesOnFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewAuditQueue(10)

	var attempts atomic.Int32
	persisted := make(chan struct{}, 1)
	svc := &mockAuditService{
		onPersist: func(entry *model.AuditEntry) error {
			if attempts.Add(1) == 1 {
				return errors.New("db down")
			}
			persisted <- struct{}{}
			return nil
		},
	}

	w := worker.NewAuditWorker(svc, q)
	require.NoError(t, w.Start(ctx))
	require.NoError(t, q.PublishAudit(ctx, &model.AuditEntry{Action: model.AuditGuestAdded}))

	select {
	case <-persisted:
		assert.Equal(t, int32(2), attempts.Load())
	case <-time.After(time.Second):
		t.Fatal("entry was not retried")
	}
}

func TestAuditWorker_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := worker.NewAuditWorker(&mockAuditService{}, queue.NewAuditQueue(1))
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestAuditWorker_SubscribeError(t *testing.T) {
	q := queueMocks.NewMockAuditQueue(t)
	q.EXPECT().SubscribeAudit(mock.Anything).Return(nil, errors.New("redis down")).Once()

	w := worker.NewAuditWorker(&mockAuditService{}, q)
	err := w.Start(context.Background())

	assert.Error(t, err)
	<-w.Done()
}
