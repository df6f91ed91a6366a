package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestRow 訪客列表的一列：event_invites × participants × attendance
type GuestRow struct {
	InviteToken   string           `json:"invite_token"`
	EventID       uuid.UUID        `json:"event_id"`
	ParticipantID uuid.UUID        `json:"participant_id"`
	ChildName     string           `json:"child_name"`
	ParentName    *string          `json:"parent_name,omitempty"`
	PhoneE164     *string          `json:"phone_e164,omitempty"`
	Method        InviteMethod     `json:"invite_method"`
	Status        InviteStatus     `json:"invite_status"`
	Attendance    AttendanceStatus `json:"attendance_status"`
	CreatedAt     time.Time        `json:"created_at"`
}

// GuestListItem 加上顯示用欄位的訪客列
type GuestListItem struct {
	GuestRow
	DisplayStatus  string  `json:"display_status"`
	PhoneDisplay   string  `json:"phone_display,omitempty"`
	WhatsAppAction *string `json:"whatsapp_action,omitempty"`
}

// GuestList 訪客列表響應
type GuestList struct {
	Event           *Event           `json:"event"`
	GuestCountLabel string           `json:"guest_count_label"`
	Guests          []*GuestListItem `json:"guests"`
}

// PreviousGuest host 過往活動的訪客
type PreviousGuest struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	ChildName     string    `json:"child_name"`
	ParentName    *string   `json:"parent_name,omitempty"`
	PhoneE164     *string   `json:"phone_e164,omitempty"`
}

// AddGuestRequest 新增單一訪客；send_via_whatsapp 預設 true
type AddGuestRequest struct {
	ChildName       string  `json:"child_name"`
	ParentName      *string `json:"parent_name"`
	Phone           *string `json:"phone"`
	SendViaWhatsApp *bool   `json:"send_via_whatsapp"`
}

// AddPreviousGuestsRequest 從過往名單批次加入
type AddPreviousGuestsRequest struct {
	Guests []PreviousGuest `json:"guests"`
	Method *InviteMethod   `json:"invite_method"`
}

// UpdateGuestRequest 編輯訪客資料
type UpdateGuestRequest struct {
	ChildName  string  `json:"child_name"`
	ParentName *string `json:"parent_name"`
	Phone      *string `json:"phone"`
}

type NewGuestParams struct {
	ChildName  string
	ParentName *string
	PhoneE164  *string
	Method     InviteMethod
}

type UpdateGuestParams struct {
	ChildName  string
	ParentName *string
	PhoneE164  *string
}

// AddPreviousGuestsResult 批次加入結果
type AddPreviousGuestsResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// WhatsAppShare 開啟 WhatsApp 分享連結的結果
type WhatsAppShare struct {
	URL         string       `json:"url"`
	Marked      bool         `json:"marked"`
	Status      InviteStatus `json:"invite_status"`
	ActionLabel string       `json:"whatsapp_action"`
}
