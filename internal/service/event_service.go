package service

import (
	"context"
	"strings"
	"time"

	"partylink/internal/model"
	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"

	"github.com/google/uuid"
)

// datetime-local 表單送出的格式，依 app timezone 解讀
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type EventService interface {
	List(ctx context.Context, hostID uuid.UUID) (*model.EventList, error)
	Get(ctx context.Context, hostID, eventID uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, hostID uuid.UUID, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, hostID, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, hostID, eventID uuid.UUID) error
}

type EventServiceImpl struct {
	repo     repository.EventRepository
	audit    AuditService
	location *time.Location
}

func NewEventService(repo repository.EventRepository, audit AuditService, location *time.Location) EventService {
	if location == nil {
		location = time.UTC
	}
	return &EventServiceImpl{repo: repo, audit: audit, location: location}
}

func (s *EventServiceImpl) List(ctx context.Context, hostID uuid.UUID) (*model.EventList, error) {
	events, err := s.repo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	list := &model.EventList{Events: events}
	if len(events) == 0 {
		list.Events = make([]*model.Event, 0)
		list.EmptyMessage = model.NoEventsMessage
	}
	return list, nil
}

func (s *EventServiceImpl) Get(ctx context.Context, hostID, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByIDForHost(ctx, hostID, eventID)
}

func (s *EventServiceImpl) Create(ctx context.Context, hostID uuid.UUID, req model.CreateEventRequest) (*model.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ErrEventTitleRequired
	}

	startsAt, err := s.parseStartsAt(req.StartsAt)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Event{
		HostID:       hostID,
		Title:        title,
		StartsAt:     startsAt,
		LocationName: trimToNil(req.LocationName),
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditEventCreated,
		Entity:   "event",
		EntityID: created.ID.String(),
		Details:  map[string]any{"title": created.Title},
	})
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, hostID, eventID uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	params := model.UpdateEventParams{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ErrEventTitleRequired
		}
		params.Title = &title
	}

	if req.StartsAt != nil {
		startsAt, err := s.parseStartsAt(*req.StartsAt)
		if err != nil {
			return nil, err
		}
		params.StartsAt = &startsAt
	}

	if req.LocationName != nil {
		location := strings.TrimSpace(*req.LocationName)
		params.LocationName = &location
	}

	if params.Title == nil && params.StartsAt == nil && params.LocationName == nil {
		return nil, apperrors.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, hostID, eventID, params)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditEventUpdated,
		Entity:   "event",
		EntityID: eventID.String(),
	})
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, hostID, eventID uuid.UUID) error {
	if err := s.repo.Delete(ctx, hostID, eventID); err != nil {
		return err
	}

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(hostID),
		Action:   model.AuditEventDeleted,
		Entity:   "event",
		EntityID: eventID.String(),
	})
	return nil
}

// parseStartsAt 接受 RFC3339，或不含時區的 datetime-local 並以 app timezone 解讀
func (s *EventServiceImpl) parseStartsAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.ErrEventStartRequired
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, s.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.ErrInvalidStartsAt
}

func trimToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
