package queue_test

import (
	"context"
	"testing"
	"time"

	"partylink/internal/model"
	"partylink/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditQueue_PublishAndSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewAuditQueue(10)
	entry := &model.AuditEntry{Action: model.AuditGuestAdded, Entity: "event_invite", EntityID: "tok"}
	require.NoError(t, q.PublishAudit(ctx, entry))

	delCh, err := q.SubscribeAudit(ctx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		assert.Equal(t, entry, d.Data)
		d.Ack()
	case <-ctx.Done():
		t.Fatal("timeout 未收到訊息")
	}
}

func TestAuditQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewAuditQueue(10)
	entry := &model.AuditEntry{Action: model.AuditRSVPSubmitted, Entity: "attendance", EntityID: "tok"}
	require.NoError(t, q.PublishAudit(ctx, entry))

	delCh, err := q.SubscribeAudit(ctx)
	require.NoError(t, err)

	first := <-delCh
	first.Nack(true)

	select {
	case d := <-delCh:
		assert.Equal(t, entry.EntityID, d.Data.EntityID, "重試應為同一筆")
	case <-ctx.Done():
		t.Fatal("timeout 未收到重試投遞")
	}
}

func TestAuditQueue_PublishRespectsContext(t *testing.T) {
	q := queue.NewAuditQueue(1)
	require.NoError(t, q.PublishAudit(context.Background(), &model.AuditEntry{}))

	// buffer 已滿，取消的 context 應立即返回
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.PublishAudit(ctx, &model.AuditEntry{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuditQueue_Subscribe_ctxCancel_closesChannel(t *testing.T) {
	q := queue.NewAuditQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	delCh, err := q.SubscribeAudit(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-delCh:
		assert.False(t, ok, "context 取消後 channel 應關閉")
	case <-time.After(time.Second):
		t.Fatal("channel 未在時限內關閉")
	}
}
