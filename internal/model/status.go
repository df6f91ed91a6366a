package model

import "fmt"

// DisplayStatus derives the single label shown for a guest.
// A final RSVP answer wins; otherwise whatsapp invites show their delivery
// state and manual invites show "Pending".
func DisplayStatus(attendance string, method InviteMethod, status InviteStatus) string {
	if s := ParseAttendanceStatus(attendance); s.IsFinal() {
		return s.Label()
	}

	if method == InviteMethodWhatsApp {
		switch status {
		case InviteStatusWhatsAppSent:
			return "WhatsApp sent"
		case InviteStatusAcknowledged:
			return "Invite acknowledged"
		default:
			return "Not sent"
		}
	}

	return "Pending"
}

func GuestCountLabel(n int) string {
	if n == 1 {
		return "1 Guest in List"
	}
	return fmt.Sprintf("%d Guests in List", n)
}

// WhatsAppActionLabel 尚未傳送顯示 Send，其餘 Resend
func WhatsAppActionLabel(status InviteStatus) string {
	if status == InviteStatusNotSent {
		return "Send"
	}
	return "Resend"
}
