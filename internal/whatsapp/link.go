package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"partylink/pkg/phone"
)

const composeBaseURL = "https://wa.me/"

// Invitation 組 WhatsApp 訊息所需資料
type Invitation struct {
	BaseURL    string
	Token      string
	EventTitle string
	ParentName *string
	PhoneE164  *string
}

func RSVPURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/rsvp/" + url.PathEscape(token)
}

// Message 訊息內容，parent name 為空時省略稱呼
func Message(inv Invitation) string {
	greeting := "Hi"
	if inv.ParentName != nil && strings.TrimSpace(*inv.ParentName) != "" {
		greeting += " " + strings.TrimSpace(*inv.ParentName)
	}
	return fmt.Sprintf("%s! Please RSVP here: %s\nEvent: %s", greeting, RSVPURL(inv.BaseURL, inv.Token), inv.EventTitle)
}

// ShareLink builds the wa.me compose URL. Without a phone number the host
// picks the recipient inside WhatsApp.
func ShareLink(inv Invitation) string {
	digits := ""
	if inv.PhoneE164 != nil {
		digits = phone.WhatsAppDigits(*inv.PhoneE164)
	}
	text := strings.ReplaceAll(url.QueryEscape(Message(inv)), "+", "%20")
	return composeBaseURL + digits + "?text=" + text
}
