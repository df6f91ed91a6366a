package repository

import (
	"context"
	"fmt"
	"time"

	"partylink/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*model.AuditEntry, error)
}

type AuditRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &AuditRepositoryImpl{
		pool: pool,
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, entry *model.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO audit_logs (host_id, action, entity, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		entry.HostID, string(entry.Action), entry.Entity, entry.EntityID, details, createdAt.UTC(),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *AuditRepositoryImpl) ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*model.AuditEntry, error) {
	query := `
		SELECT id, host_id, action, entity, entity_id, details, created_at
		FROM audit_logs
		WHERE host_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, hostID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*model.AuditEntry, 0)
	for rows.Next() {
		var entry model.AuditEntry
		err := rows.Scan(
			&entry.ID,
			&entry.HostID,
			&entry.Action,
			&entry.Entity,
			&entry.EntityID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
