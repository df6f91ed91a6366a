package model

import (
	"time"

	"github.com/google/uuid"
)

const NoEventsMessage = "There are no events created"

// Event 派對活動，屬於單一 host
type Event struct {
	ID           uuid.UUID `json:"id" db:"id"`
	HostID       uuid.UUID `json:"host_id" db:"host_id"`
	Title        string    `json:"title" db:"title"`
	StartsAt     time.Time `json:"starts_at" db:"starts_at"`
	LocationName *string   `json:"location_name,omitempty" db:"location_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateEventRequest 建立活動請求；starts_at 接受 RFC3339 或 datetime-local
type CreateEventRequest struct {
	Title        string  `json:"title"`
	StartsAt     string  `json:"starts_at"`
	LocationName *string `json:"location_name"`
}

// UpdateEventRequest 更新活動請求
type UpdateEventRequest struct {
	Title        *string `json:"title"`
	StartsAt     *string `json:"starts_at"`
	LocationName *string `json:"location_name"`
}

type UpdateEventParams struct {
	Title        *string
	StartsAt     *time.Time
	LocationName *string
}

// EventList 活動列表響應
type EventList struct {
	Events       []*Event `json:"events"`
	EmptyMessage string   `json:"empty_message,omitempty"`
}
