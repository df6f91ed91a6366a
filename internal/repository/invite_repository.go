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

// InviteRepository 訪客名單的資料存取；所有操作都透過 events.host_id 限定擁有者
type InviteRepository interface {
	ListGuests(ctx context.Context, hostID, eventID uuid.UUID) ([]*model.GuestRow, error)
	FindGuest(ctx context.Context, hostID, eventID uuid.UUID, token string) (*model.GuestRow, error)
	GetPreviousGuestsForHost(ctx context.Context, hostID, excludeEventID uuid.UUID) ([]*model.PreviousGuest, error)
	UpdateEventInviteDetails(ctx context.Context, hostID, eventID uuid.UUID, token string, params model.UpdateGuestParams) error
	DeleteEventInvite(ctx context.Context, hostID, eventID uuid.UUID, token string) error
	SetAttendanceStatus(ctx context.Context, hostID, eventID uuid.UUID, token string, status model.AttendanceStatus) error
	// MarkWhatsAppSent 只在 not_sent 時更新，回傳是否有更新
	MarkWhatsAppSent(ctx context.Context, hostID, eventID uuid.UUID, token string) (bool, error)

	// Transaction methods: participant + invite + attendance 一起寫入
	CreateInviteWithParticipant(ctx context.Context, hostID, eventID uuid.UUID, params model.NewGuestParams) (*model.GuestRow, error)
	AddInvitesForPreviousGuests(ctx context.Context, hostID, eventID uuid.UUID, guests []model.PreviousGuest, method model.InviteMethod) (model.AddPreviousGuestsResult, error)
}

type InviteRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewInviteRepository(pool *pgxpool.Pool) InviteRepository {
	return &InviteRepositoryImpl{
		pool: pool,
	}
}

const guestSelect = `
	SELECT ei.invite_token, ei.event_id, ei.participant_id, p.full_name,
	       ei.parent_name, ei.phone_e164,
	       COALESCE(ei.invite_method, 'whatsapp'),
	       COALESCE(ei.invite_status, 'not_sent'),
	       COALESCE(a.status, 'pending'),
	       ei.created_at
	FROM event_invites ei
	JOIN events e ON e.id = ei.event_id
	JOIN participants p ON p.id = ei.participant_id
	LEFT JOIN attendance a ON a.event_id = ei.event_id AND a.participant_id = ei.participant_id
`

func scanGuestRow(row pgx.Row) (*model.GuestRow, error) {
	var guest model.GuestRow
	var attendance string
	err := row.Scan(
		&guest.InviteToken,
		&guest.EventID,
		&guest.ParticipantID,
		&guest.ChildName,
		&guest.ParentName,
		&guest.PhoneE164,
		&guest.Method,
		&guest.Status,
		&attendance,
		&guest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	guest.Attendance = model.ParseAttendanceStatus(attendance)
	return &guest, nil
}

func (r *InviteRepositoryImpl) ListGuests(ctx context.Context, hostID, eventID uuid.UUID) ([]*model.GuestRow, error) {
	query := guestSelect + `
		WHERE ei.event_id = $1 AND e.host_id = $2
		ORDER BY ei.created_at ASC, ei.invite_token ASC
	`
	rows, err := r.pool.Query(ctx, query, eventID, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*model.GuestRow, 0)
	for rows.Next() {
		guest, err := scanGuestRow(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guests, nil
}

func (r *InviteRepositoryImpl) FindGuest(ctx context.Context, hostID, eventID uuid.UUID, token string) (*model.GuestRow, error) {
	query := guestSelect + `
		WHERE ei.invite_token = $1 AND ei.event_id = $2 AND e.host_id = $3
	`
	guest, err := scanGuestRow(r.pool.QueryRow(ctx, query, token, eventID, hostID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (r *InviteRepositoryImpl) CreateInviteWithParticipant(ctx context.Context, hostID, eventID uuid.UUID, params model.NewGuestParams) (*model.GuestRow, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := lockEventForHost(ctx, tx, hostID, eventID); err != nil {
		return nil, err
	}

	guest := &model.GuestRow{
		EventID:    eventID,
		ChildName:  params.ChildName,
		ParentName: params.ParentName,
		PhoneE164:  params.PhoneE164,
		Method:     params.Method,
		Status:     model.InviteStatusNotSent,
		Attendance: model.AttendancePending,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO participants (host_id, full_name)
		VALUES ($1, $2)
		RETURNING id
	`, hostID, params.ChildName).Scan(&guest.ParticipantID)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	if err := insertInvite(ctx, tx, guest); err != nil {
		if errors.Is(err, errInviteExists) {
			return nil, apperrors.ErrGuestAlreadyInvited
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return guest, nil
}

func (r *InviteRepositoryImpl) GetPreviousGuestsForHost(ctx context.Context, hostID, excludeEventID uuid.UUID) ([]*model.PreviousGuest, error) {
	// 每位 participant 取最近一次邀請的家長資料，已在本活動名單中的排除
	query := `
		SELECT id, full_name, parent_name, phone_e164
		FROM (
			SELECT DISTINCT ON (p.id) p.id, p.full_name, ei.parent_name, ei.phone_e164
			FROM participants p
			LEFT JOIN event_invites ei ON ei.participant_id = p.id
			WHERE p.host_id = $1
			  AND NOT EXISTS (
				SELECT 1 FROM event_invites x
				WHERE x.event_id = $2 AND x.participant_id = p.id
			  )
			ORDER BY p.id, ei.created_at DESC NULLS LAST
		) g
		ORDER BY lower(full_name), id
	`
	rows, err := r.pool.Query(ctx, query, hostID, excludeEventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*model.PreviousGuest, 0)
	for rows.Next() {
		var g model.PreviousGuest
		if err := rows.Scan(&g.ParticipantID, &g.ChildName, &g.ParentName, &g.PhoneE164); err != nil {
			return nil, err
		}
		guests = append(guests, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guests, nil
}

func (r *InviteRepositoryImpl) AddInvitesForPreviousGuests(
	ctx context.Context,
	hostID, eventID uuid.UUID,
	guests []model.PreviousGuest,
	method model.InviteMethod,
) (model.AddPreviousGuestsResult, error) {
	var result model.AddPreviousGuestsResult

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return result, err
	}
	defer tx.Rollback(ctx)

	if err := lockEventForHost(ctx, tx, hostID, eventID); err != nil {
		return result, err
	}

	for _, g := range guests {
		participantID, err := resolveParticipant(ctx, tx, hostID, g)
		if err != nil {
			return model.AddPreviousGuestsResult{}, err
		}

		guest := &model.GuestRow{
			EventID:       eventID,
			ParticipantID: participantID,
			ParentName:    g.ParentName,
			PhoneE164:     g.PhoneE164,
			Method:        method,
			Status:        model.InviteStatusNotSent,
		}
		err = insertInvite(ctx, tx, guest)
		if errors.Is(err, errInviteExists) {
			result.Skipped++
			continue
		}
		if err != nil {
			return model.AddPreviousGuestsResult{}, fmt.Errorf("failed to add invite: %w", err)
		}
		result.Added++
	}

	if err := tx.Commit(ctx); err != nil {
		return model.AddPreviousGuestsResult{}, err
	}

	return result, nil
}

func (r *InviteRepositoryImpl) UpdateEventInviteDetails(ctx context.Context, hostID, eventID uuid.UUID, token string, params model.UpdateGuestParams) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var participantID uuid.UUID
	err = tx.QueryRow(ctx, `
		UPDATE event_invites ei
		SET parent_name = $1, phone_e164 = $2, updated_at = NOW()
		FROM events e
		WHERE ei.invite_token = $3 AND ei.event_id = $4
		  AND e.id = ei.event_id AND e.host_id = $5
		RETURNING ei.participant_id
	`, params.ParentName, params.PhoneE164, token, eventID, hostID).Scan(&participantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrGuestNotFound
		}
		return fmt.Errorf("failed to update invite: %w", err)
	}

	// 小孩名字存在 participant 上，其他活動的名單也會一起更新
	_, err = tx.Exec(ctx, `
		UPDATE participants
		SET full_name = $1
		WHERE id = $2 AND host_id = $3
	`, params.ChildName, participantID, hostID)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *InviteRepositoryImpl) DeleteEventInvite(ctx context.Context, hostID, eventID uuid.UUID, token string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var participantID uuid.UUID
	err = tx.QueryRow(ctx, `
		DELETE FROM event_invites ei
		USING events e
		WHERE ei.invite_token = $1 AND ei.event_id = $2
		  AND e.id = ei.event_id AND e.host_id = $3
		RETURNING ei.participant_id
	`, token, eventID, hostID).Scan(&participantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrGuestNotFound
		}
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM attendance
		WHERE event_id = $1 AND participant_id = $2
	`, eventID, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *InviteRepositoryImpl) SetAttendanceStatus(ctx context.Context, hostID, eventID uuid.UUID, token string, status model.AttendanceStatus) error {
	query := `
		INSERT INTO attendance (event_id, participant_id, status, updated_at)
		SELECT ei.event_id, ei.participant_id, $1::text, NOW()
		FROM event_invites ei
		JOIN events e ON e.id = ei.event_id
		WHERE ei.invite_token = $2 AND ei.event_id = $3 AND e.host_id = $4
		ON CONFLICT (event_id, participant_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`
	result, err := r.pool.Exec(ctx, query, string(status), token, eventID, hostID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGuestNotFound
	}

	return nil
}

func (r *InviteRepositoryImpl) MarkWhatsAppSent(ctx context.Context, hostID, eventID uuid.UUID, token string) (bool, error) {
	query := `
		UPDATE event_invites ei
		SET invite_status = $1, updated_at = NOW()
		FROM events e
		WHERE ei.invite_token = $2 AND ei.event_id = $3
		  AND e.id = ei.event_id AND e.host_id = $4
		  AND ei.invite_status = $5
	`
	result, err := r.pool.Exec(ctx, query,
		string(model.InviteStatusWhatsAppSent), token, eventID, hostID, string(model.InviteStatusNotSent),
	)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// Helper functions

// lockEventForHost 確認活動屬於此 host，並鎖住該列直到 transaction 結束
func lockEventForHost(ctx context.Context, tx pgx.Tx, hostID, eventID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		SELECT id FROM events
		WHERE id = $1 AND host_id = $2
		FOR UPDATE
	`, eventID, hostID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEventNotFound
		}
		return err
	}
	return nil
}

// resolveParticipant 沿用屬於此 host 的 participant，否則以名字新建
func resolveParticipant(ctx context.Context, tx pgx.Tx, hostID uuid.UUID, g model.PreviousGuest) (uuid.UUID, error) {
	if g.ParticipantID != uuid.Nil {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			SELECT id FROM participants
			WHERE id = $1 AND host_id = $2
		`, g.ParticipantID, hostID).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, err
		}
	}

	name := strings.TrimSpace(g.ChildName)
	if name == "" {
		return uuid.Nil, apperrors.ErrChildNameRequired
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO participants (host_id, full_name)
		VALUES ($1, $2)
		RETURNING id
	`, hostID, name).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return id, nil
}

// insertInvite 寫入 invite 與 pending attendance；同活動已有此 participant 時回傳 errInviteExists
func insertInvite(ctx context.Context, tx pgx.Tx, guest *model.GuestRow) error {
	token, err := newInviteToken()
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO event_invites (invite_token, event_id, participant_id, parent_name, phone_e164, invite_method, invite_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id, participant_id) DO NOTHING
		RETURNING created_at
	`, token, guest.EventID, guest.ParticipantID, guest.ParentName, guest.PhoneE164,
		string(guest.Method), string(guest.Status),
	).Scan(&guest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errInviteExists
		}
		return err
	}
	guest.InviteToken = token

	_, err = tx.Exec(ctx, `
		INSERT INTO attendance (event_id, participant_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, participant_id) DO NOTHING
	`, guest.EventID, guest.ParticipantID, string(model.AttendancePending))
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	guest.Attendance = model.AttendancePending
	return nil
}
