package service

import (
	"context"
	"errors"
	"strings"

	"partylink/internal/model"
	"partylink/internal/repository"
	apperrors "partylink/pkg/app_errors"
	"partylink/pkg/logger"

	"go.uber.org/zap"
)

// RSVPService 訪客端；任何查詢失敗都回傳 ErrInvalidInviteLink，不區分原因
type RSVPService interface {
	Resolve(ctx context.Context, token string) (*model.RSVPView, error)
	Submit(ctx context.Context, token string, status string) (*model.RSVPView, error)
}

type RSVPServiceImpl struct {
	repository repository.RSVPRepository
	audit      AuditService
}

func NewRSVPService(repository repository.RSVPRepository, audit AuditService) RSVPService {
	return &RSVPServiceImpl{
		repository: repository,
		audit:      audit,
	}
}

func (s *RSVPServiceImpl) Resolve(ctx context.Context, token string) (*model.RSVPView, error) {
	view, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	// 訪客打開了 WhatsApp 送出的連結
	if view.InviteStatus.CanTransitionTo(model.InviteStatusAcknowledged) {
		acked, err := s.repository.MarkAcknowledged(ctx, view.InviteToken)
		if err != nil {
			logger.WithComponent("service").Warn("failed to mark invite acknowledged", zap.Error(err))
		}
		if acked {
			view.InviteStatus = model.InviteStatusAcknowledged
			s.audit.Record(ctx, model.AuditEntry{
				HostID:   hostRef(view.HostID),
				Action:   model.AuditInviteAcked,
				Entity:   "event_invite",
				EntityID: view.InviteToken,
			})
		}
	}

	return view, nil
}

func (s *RSVPServiceImpl) Submit(ctx context.Context, token string, status string) (*model.RSVPView, error) {
	answer, ok := model.ParseRSVPAnswer(status)
	if !ok {
		return nil, apperrors.ErrInvalidRSVPStatus
	}

	view, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SubmitRSVP(ctx, view.InviteToken, answer); err != nil {
		return nil, err
	}
	view.Status = answer

	s.audit.Record(ctx, model.AuditEntry{
		HostID:   hostRef(view.HostID),
		Action:   model.AuditRSVPSubmitted,
		Entity:   "attendance",
		EntityID: view.InviteToken,
		Details:  map[string]any{"status": string(answer)},
	})
	return view, nil
}

func (s *RSVPServiceImpl) lookup(ctx context.Context, token string) (*model.RSVPView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrInvalidInviteLink
	}

	view, err := s.repository.GetRSVPView(ctx, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidInviteLink) {
			logger.WithComponent("service").Error("rsvp lookup failed", zap.Error(err))
		}
		return nil, apperrors.ErrInvalidInviteLink
	}
	return view, nil
}
