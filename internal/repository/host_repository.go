package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"partylink/internal/model"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HostRepository interface {
	FindOrCreateByEmail(ctx context.Context, email string) (*model.Host, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Host, error)
}

type HostRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewHostRepository(pool *pgxpool.Pool) HostRepository {
	return &HostRepositoryImpl{
		pool: pool,
	}
}

func (r *HostRepositoryImpl) FindOrCreateByEmail(ctx context.Context, email string) (*model.Host, error) {
	// DO UPDATE 讓既有的 row 也能 RETURNING
	query := `
		INSERT INTO hosts (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at
	`

	var host model.Host
	err := r.pool.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&host.ID,
		&host.Email,
		&host.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert host: %w", err)
	}

	return &host, nil
}

func (r *HostRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Host, error) {
	query := `
		SELECT id, email, created_at
		FROM hosts
		WHERE id = $1
	`

	var host model.Host
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&host.ID,
		&host.Email,
		&host.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostNotFound
		}
		return nil, err
	}

	return &host, nil
}
