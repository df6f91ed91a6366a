package service

import (
	"context"
	"strings"

	"partylink/internal/model"
	"partylink/internal/repository"
	"partylink/internal/whatsapp"
	apperrors "partylink/pkg/app_errors"
	"partylink/pkg/logger"
	"partylink/pkg/phone"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuestService interface {
	ListGuests(ctx context.Context, hostID, eventID uuid.UUID) (*model.GuestList, error)
	AddGuest(ctx context.Context, hostID, eventID uuid.UUID, req model.AddGuestRequest) (*model.GuestListItem, error)
	PreviousGuests(ctx context.Context, hostID, eventID uuid.UUID) ([]*model.PreviousGuest, error)
	AddPreviousGuests(ctx context.Context, hostID, eventID uuid.UUID, req model.AddPreviousGuestsRequest) (model.AddPreviousGuestsResult, error)
	UpdateGuest(ctx context.Context, hostID, eventID uuid.UUID, token string, req model.UpdateGuestRequest) (*model.GuestListItem, error)
	DeleteGuest(ctx context.Context, hostID, eventID uuid.UUID, token string) error
	// SetAttendance host 手動設定出席狀態，四種狀態皆可，不限制轉換
	SetAttendance(ctx context.Context, hostID, eventID uuid.UUID, token string, status string) (*model.GuestListItem, error)
	// OpenWhatsApp 回傳分享連結；第一次開啟時標記為 whatsapp_sent
	OpenWhatsApp(ctx context.Context, hostID, eventID uuid.UUID, token string) (*model.WhatsAppShare, error)
}

type GuestServiceImpl struct {
	eventRepo  repository.EventRepository
	inviteRepo repository.InviteRepository
	audit      AuditService
	baseURL    string
}

func NewGuestService(
	eventRepo repository.EventRepository,
	inviteRepo repository.InviteRepository,
	audit AuditService,
	baseURL string,
) GuestService {
	return &GuestServiceImpl{
		eventRepo:  eventRepo,
		inviteRepo: inviteRepo,
		audit:      audit,
		baseURL:    baseURL,
	}
}

func (s *GuestServiceImpl) ListGuests(ctx context.Context, hostID, eventID uuid.UUID) (*model.GuestList, error) {
	event, err := s.eventRepo.FindByIDForHost(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	rows, err := s.inviteRepo.ListGuests(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	items := make([]*model.GuestListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, NewGuestListItem(row))
	}

	return &model.GuestList{
		Event:           event,
		GuestCountLabel: model.GuestCountLabel(len(items)),
		Guests:          items,
	}, nil
}

func (s *GuestServiceImpl) AddGuest(ctx context.Context, hostID, eventID uuid.UUID, req model.AddGuestRequest) (*model.GuestListItem, error) {
	childName := strings.TrimSpace(req.ChildName)
	if childName == "" {
		return nil, apperrors.ErrChildNameRequired
	}

	method := model.InviteMethodWhatsApp
	if req.SendViaWhatsApp != nil && !*req.SendViaWhatsApp {
		method = model.InviteMethodManual
	}

	row, err := s.inviteRepo.CreateInviteWithParticipant(ctx, hostID, eventID, model.NewGuestParams{
		ChildName:  childName,
		ParentName: trimToNil(req.ParentName),
		PhoneE164:  normalizePhone(req.Phone),
		Method:     method,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditGuestAdded,
		Entity:   "event_invite",
		EntityID: row.InviteToken,
		Details:  map[string]any{"event_id": eventID.String(), "invite_method": string(method)},
	})
	return NewGuestListItem(row), nil
}

func (s *GuestServiceImpl) PreviousGuests(ctx context.Context, hostID, eventID uuid.UUID) ([]*model.PreviousGuest, error) {
	if _, err := s.eventRepo.FindByIDForHost(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	return s.inviteRepo.GetPreviousGuestsForHost(ctx, hostID, eventID)
}

func (s *GuestServiceImpl) AddPreviousGuests(ctx context.Context, hostID, eventID uuid.UUID, req model.AddPreviousGuestsRequest) (model.AddPreviousGuestsResult, error) {
	if len(req.Guests) == 0 {
		return model.AddPreviousGuestsResult{}, apperrors.ErrNoGuestsSelected
	}

	method := model.InviteMethodManual
	if req.Method != nil {
		if !req.Method.IsValid() {
			return model.AddPreviousGuestsResult{}, apperrors.ErrInvalidInput
		}
		method = *req.Method
	}

	// 同一位 participant 重複勾選只算一次
	seen := make(map[uuid.UUID]bool, len(req.Guests))
	guests := make([]model.PreviousGuest, 0, len(req.Guests))
	for _, g := range req.Guests {
		if g.ParticipantID != uuid.Nil {
			if seen[g.ParticipantID] {
				continue
			}
			seen[g.ParticipantID] = true
		}
		name := strings.TrimSpace(g.ChildName)
		if g.ParticipantID == uuid.Nil && name == "" {
			return model.AddPreviousGuestsResult{}, apperrors.ErrChildNameRequired
		}
		guests = append(guests, model.PreviousGuest{
			ParticipantID: g.ParticipantID,
			ChildName:     name,
			ParentName:    trimToNil(g.ParentName),
			PhoneE164:     normalizePhone(g.PhoneE164),
		})
	}

	result, err := s.inviteRepo.AddInvitesForPreviousGuests(ctx, hostID, eventID, guests, method)
	if err != nil {
		return model.AddPreviousGuestsResult{}, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditGuestsImported,
		Entity:   "event",
		EntityID: eventID.String(),
		Details:  map[string]any{"added": result.Added, "skipped": result.Skipped},
	})
	return result, nil
}

func (s *GuestServiceImpl) UpdateGuest(ctx context.Context, hostID, eventID uuid.UUID, token string, req model.UpdateGuestRequest) (*model.GuestListItem, error) {
	childName := strings.TrimSpace(req.ChildName)
	if childName == "" {
		return nil, apperrors.ErrChildNameRequired
	}

	err := s.inviteRepo.UpdateEventInviteDetails(ctx, hostID, eventID, token, model.UpdateGuestParams{
		ChildName:  childName,
		ParentName: trimToNil(req.ParentName),
		PhoneE164:  normalizePhone(req.Phone),
	})
	if err != nil {
		return nil, err
	}

	row, err := s.inviteRepo.FindGuest(ctx, hostID, eventID, token)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditGuestUpdated,
		Entity:   "event_invite",
		EntityID: token,
	})
	return NewGuestListItem(row), nil
}

func (s *GuestServiceImpl) DeleteGuest(ctx context.Context, hostID, eventID uuid.UUID, token string) error {
	if err := s.inviteRepo.DeleteEventInvite(ctx, hostID, eventID, token); err != nil {
		return err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditGuestDeleted,
		Entity:   "event_invite",
		EntityID: token,
		Details:  map[string]any{"event_id": eventID.String()},
	})
	return nil
}

func (s *GuestServiceImpl) SetAttendance(ctx context.Context, hostID, eventID uuid.UUID, token string, status string) (*model.GuestListItem, error) {
	attendance := model.AttendanceStatus(strings.ToLower(strings.TrimSpace(status)))
	if !attendance.IsValid() {
		return nil, apperrors.ErrInvalidAttendanceStatus
	}

	if err := s.inviteRepo.SetAttendanceStatus(ctx, hostID, eventID, token, attendance); err != nil {
		return nil, err
	}

	row, err := s.inviteRepo.FindGuest(ctx, hostID, eventID, token)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditAttendanceSet,
		Entity:   "attendance",
		EntityID: token,
		Details:  map[string]any{"status": string(attendance)},
	})
	return NewGuestListItem(row), nil
}

func (s *GuestServiceImpl) OpenWhatsApp(ctx context.Context, hostID, eventID uuid.UUID, token string) (*model.WhatsAppShare, error) {
	event, err := s.eventRepo.FindByIDForHost(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	guest, err := s.inviteRepo.FindGuest(ctx, hostID, eventID, token)
	if err != nil {
		return nil, err
	}
	if guest.Method != model.InviteMethodWhatsApp {
		return nil, apperrors.ErrNotWhatsAppInvite
	}

	share := &model.WhatsAppShare{
		URL: whatsapp.ShareLink(whatsapp.Invitation{
			BaseURL:    s.baseURL,
			Token:      guest.InviteToken,
			EventTitle: event.Title,
			ParentName: guest.ParentName,
			PhoneE164:  guest.PhoneE164,
		}),
		Status: guest.Status,
	}

	// 只有 not_sent 會被標記；Resend 不改狀態
	if guest.Status.CanTransitionTo(model.InviteStatusWhatsAppSent) {
		marked, err := s.inviteRepo.MarkWhatsAppSent(ctx, hostID, eventID, token)
		if err != nil {
			// 連結仍可使用，標記失敗只記 log
			logger.WithComponent("service").Warn("failed to mark whatsapp sent", zap.String("invite_token", token), zap.Error(err))
		}
		if marked {
			share.Marked = true
			share.Status = model.InviteStatusWhatsAppSent
			s.audit.Record(ctx, model.AuditEntry{
				HostID:   hostRef(hostID),
				Action:   model.AuditWhatsAppSent,
				Entity:   "event_invite",
				EntityID: token,
			})
		}
	}

	share.ActionLabel = model.WhatsAppActionLabel(share.Status)
	return share, nil
}

// NewGuestListItem 加上顯示用欄位
func NewGuestListItem(row *model.GuestRow) *model.GuestListItem {
	item := &model.GuestListItem{
		GuestRow:      *row,
		DisplayStatus: model.DisplayStatus(string(row.Attendance), row.Method, row.Status),
	}
	if row.PhoneE164 != nil {
		item.PhoneDisplay = phone.Display(*row.PhoneE164)
	}
	if row.Method == model.InviteMethodWhatsApp {
		label := model.WhatsAppActionLabel(row.Status)
		item.WhatsAppAction = &label
	}
	return item
}

func normalizePhone(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := strings.TrimSpace(phone.Normalize(*value))
	if normalized == "" {
		return nil
	}
	return &normalized
}
