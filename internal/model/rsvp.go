package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultGuestName = "Guest"
	RSVPSavedMessage = "Saved. Thank you!"
)

// RSVPView 訪客透過 token 看到的邀請內容
type RSVPView struct {
	InviteToken  string           `json:"invite_token"`
	EventID      uuid.UUID        `json:"-"`
	HostID       uuid.UUID        `json:"-"`
	EventTitle   string           `json:"event_title"`
	StartsAt     time.Time        `json:"starts_at"`
	LocationName *string          `json:"location_name,omitempty"`
	ChildName    string           `json:"child_name"`
	Status       AttendanceStatus `json:"status"`
	InviteStatus InviteStatus     `json:"-"`
}

type SubmitRSVPRequest struct {
	Status string `json:"status" binding:"required"`
}
