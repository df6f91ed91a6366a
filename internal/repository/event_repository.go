package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"partylink/internal/model"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository 所有查詢都以 host_id 限定範圍
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*model.Event, error)
	FindByIDForHost(ctx context.Context, hostID, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, hostID, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, hostID, eventID uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, host_id, title, starts_at, location_name, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.HostID,
		&event.Title,
		&event.StartsAt,
		&event.LocationName,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (host_id, title, starts_at, location_name)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.HostID, event.Title, event.StartsAt.UTC(), event.LocationName,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE host_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByIDForHost(ctx context.Context, hostID, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND host_id = $2
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID, hostID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, hostID, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.StartsAt != nil {
		sets = append(sets, fmt.Sprintf("starts_at = $%d", argPos))
		args = append(args, params.StartsAt.UTC())
		argPos++
	}

	if params.LocationName != nil {
		// 空字串代表清除地點
		sets = append(sets, fmt.Sprintf("location_name = NULLIF($%d, '')", argPos))
		args = append(args, *params.LocationName)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, eventID, hostID)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d AND host_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, argPos+1, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, hostID, eventID uuid.UUID) error {
	query := `
		DELETE FROM events
		WHERE id = $1 AND host_id = $2
	`
	result, err := r.pool.Exec(ctx, query, eventID, hostID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
