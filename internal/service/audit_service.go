package service

import (
	"context"
	"time"

	"partylink/internal/model"
	"partylink/internal/queue"
	"partylink/internal/repository"
	"partylink/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	publishTimeout      = 2 * time.Second
	DefaultActivitySize = 50
)

type AuditService interface {
	// Record 發送異動紀錄到隊列；失敗只記 log，不影響使用者操作
	Record(ctx context.Context, entry model.AuditEntry)
	// Persist 由 worker 呼叫，寫入資料庫
	Persist(ctx context.Context, entry *model.AuditEntry) error
	RecentActivity(ctx context.Context, hostID uuid.UUID, limit int) ([]*model.AuditEntry, error)
}

type AuditServiceImpl struct {
	repository repository.AuditRepository
	auditQueue queue.AuditQueue
	now        func() time.Time
}

func NewAuditService(repository repository.AuditRepository, auditQueue queue.AuditQueue) AuditService {
	return &AuditServiceImpl{
		repository: repository,
		auditQueue: auditQueue,
		now:        time.Now,
	}
}

func (s *AuditServiceImpl) Record(ctx context.Context, entry model.AuditEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}

	// 請求結束後仍要送出，因此不跟隨請求的 cancel
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.auditQueue.PublishAudit(pubCtx, &entry); err != nil {
		logger.WithComponent("service").Error("failed to publish audit entry",
			zap.String("action", string(entry.Action)),
			zap.String("entity", entry.Entity),
			zap.String("entity_id", entry.EntityID),
			zap.Error(err),
		)
	}
}

func (s *AuditServiceImpl) Persist(ctx context.Context, entry *model.AuditEntry) error {
	return s.repository.Create(ctx, entry)
}

func (s *AuditServiceImpl) RecentActivity(ctx context.Context, hostID uuid.UUID, limit int) ([]*model.AuditEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = DefaultActivitySize
	}
	return s.repository.ListByHost(ctx, hostID, limit)
}

func hostRef(id uuid.UUID) *uuid.UUID {
	return &id
}
