package model

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditEventCreated     AuditAction = "event.created"
	AuditEventUpdated     AuditAction = "event.updated"
	AuditEventDeleted     AuditAction = "event.deleted"
	AuditGuestAdded       AuditAction = "guest.added"
	AuditGuestsImported   AuditAction = "guest.imported"
	AuditGuestUpdated     AuditAction = "guest.updated"
	AuditGuestDeleted     AuditAction = "guest.deleted"
	AuditAttendanceSet    AuditAction = "attendance.set"
	AuditWhatsAppSent     AuditAction = "invite.whatsapp_sent"
	AuditInviteAcked      AuditAction = "invite.acknowledged"
	AuditRSVPSubmitted    AuditAction = "rsvp.submitted"
	AuditHostLoggedIn     AuditAction = "host.logged_in"
	AuditLoginCodeRequest AuditAction = "host.login_code_requested"
)

// AuditEntry 一筆異動紀錄；RSVP 由訪客觸發時 HostID 仍為活動擁有者
type AuditEntry struct {
	ID        int64          `json:"id"`
	HostID    *uuid.UUID     `json:"host_id,omitempty"`
	Action    AuditAction    `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entity_id"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
