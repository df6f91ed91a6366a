package service_test

import (
	"context"
	"testing"
	"time"

	"partylink/internal/model"
	"partylink/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	testHostID  = uuid.MustParse("6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b")
	testEventID = uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
	singapore   = time.FixedZone("SGT", 8*60*60)
)

func ptr[T any](v T) *T {
	return &v
}

// expectAudit 記錄送出的 audit action
func expectAudit(t *testing.T) (*mocks.MockAuditService, *[]model.AuditAction) {
	t.Helper()
	audit := mocks.NewMockAuditService(t)
	actions := make([]model.AuditAction, 0)
	audit.EXPECT().Record(mock.Anything, mock.Anything).Run(func(_ context.Context, entry model.AuditEntry) {
		actions = append(actions, entry.Action)
	}).Return().Maybe()
	return audit, &actions
}
