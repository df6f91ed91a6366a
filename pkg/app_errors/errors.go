package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// events
	ErrEventNotFound      = errors.New("event not found")
	ErrEventTitleRequired = errors.New("please enter a party name")
	ErrEventStartRequired = errors.New("please select date & time")
	ErrInvalidStartsAt    = errors.New("invalid event date & time")

	// guests
	ErrGuestNotFound           = errors.New("guest not found")
	ErrChildNameRequired       = errors.New("child name is required")
	ErrNoGuestsSelected        = errors.New("please select at least one guest")
	ErrGuestAlreadyInvited     = errors.New("guest already invited to this event")
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrNotWhatsAppInvite       = errors.New("invite is not sent via whatsapp")

	// rsvp
	ErrInvalidInviteLink = errors.New("invalid or expired invite link")
	ErrInvalidRSVPStatus = errors.New("invalid rsvp status")

	// auth
	ErrHostNotFound      = errors.New("host not found")
	ErrInvalidCode       = errors.New("invalid or expired code")
	ErrTooManyAttempts   = errors.New("too many attempts")
	ErrInvalidSession    = errors.New("invalid session")
	ErrMagicLinkNotFound = errors.New("magic link not found")
)
