package repository

import (
	"context"
	"errors"
	"strings"

	"partylink/internal/model"
	apperrors "partylink/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RSVPRepository 訪客端操作，只以 invite token 作為憑證
type RSVPRepository interface {
	GetRSVPView(ctx context.Context, token string) (*model.RSVPView, error)
	SubmitRSVP(ctx context.Context, token string, status model.AttendanceStatus) error
	// MarkAcknowledged 只在 whatsapp_sent 時更新，回傳是否有更新
	MarkAcknowledged(ctx context.Context, token string) (bool, error)
}

type RSVPRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) RSVPRepository {
	return &RSVPRepositoryImpl{
		pool: pool,
	}
}

func (r *RSVPRepositoryImpl) GetRSVPView(ctx context.Context, token string) (*model.RSVPView, error) {
	query := `
		SELECT ei.invite_token, e.id, e.host_id, e.title, e.starts_at, e.location_name,
		       p.full_name, COALESCE(a.status, 'pending'), ei.invite_status
		FROM event_invites ei
		JOIN events e ON e.id = ei.event_id
		JOIN participants p ON p.id = ei.participant_id
		LEFT JOIN attendance a ON a.event_id = ei.event_id AND a.participant_id = ei.participant_id
		WHERE ei.invite_token = $1
	`

	var view model.RSVPView
	var status string
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&view.InviteToken,
		&view.EventID,
		&view.HostID,
		&view.EventTitle,
		&view.StartsAt,
		&view.LocationName,
		&view.ChildName,
		&status,
		&view.InviteStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidInviteLink
		}
		return nil, err
	}

	view.Status = model.ParseAttendanceStatus(status)
	if strings.TrimSpace(view.ChildName) == "" {
		view.ChildName = model.DefaultGuestName
	}

	return &view, nil
}

func (r *RSVPRepositoryImpl) SubmitRSVP(ctx context.Context, token string, status model.AttendanceStatus) error {
	query := `
		INSERT INTO attendance (event_id, participant_id, status, updated_at)
		SELECT ei.event_id, ei.participant_id, $1::text, NOW()
		FROM event_invites ei
		WHERE ei.invite_token = $2
		ON CONFLICT (event_id, participant_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`
	result, err := r.pool.Exec(ctx, query, string(status), token)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidInviteLink
	}

	return nil
}

func (r *RSVPRepositoryImpl) MarkAcknowledged(ctx context.Context, token string) (bool, error) {
	query := `
		UPDATE event_invites
		SET invite_status = $1, updated_at = NOW()
		WHERE invite_token = $2 AND invite_status = $3
	`
	result, err := r.pool.Exec(ctx, query,
		string(model.InviteStatusAcknowledged), token, string(model.InviteStatusWhatsAppSent),
	)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}
