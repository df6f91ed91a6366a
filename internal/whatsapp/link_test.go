package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"partylink/internal/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRSVPURL(t *testing.T) {
	assert.Equal(t, "https://partylink.co/rsvp/abc123", whatsapp.RSVPURL("https://partylink.co/", "abc123"))
	assert.Equal(t, "https://partylink.co/rsvp/abc123", whatsapp.RSVPURL("https://partylink.co", "abc123"))
}

func TestMessage(t *testing.T) {
	inv := whatsapp.Invitation{
		BaseURL:    "https://partylink.co",
		Token:      "tok",
		EventTitle: "Tom's 7th Birthday",
		ParentName: strPtr("Anna"),
	}
	assert.Equal(t, "Hi Anna! Please RSVP here: https://partylink.co/rsvp/tok\nEvent: Tom's 7th Birthday", whatsapp.Message(inv))

	inv.ParentName = strPtr("  ")
	assert.Equal(t, "Hi! Please RSVP here: https://partylink.co/rsvp/tok\nEvent: Tom's 7th Birthday", whatsapp.Message(inv))
}

func TestShareLink(t *testing.T) {
	t.Run("WithPhone", func(t *testing.T) {
		inv := whatsapp.Invitation{
			BaseURL:    "https://partylink.co",
			Token:      "tok",
			EventTitle: "Tom's 7th Birthday",
			PhoneE164:  strPtr("+6581234567"),
		}
		link := whatsapp.ShareLink(inv)

		require.True(t, strings.HasPrefix(link, "https://wa.me/6581234567?text="))
		assert.NotContains(t, link, "+")

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, whatsapp.Message(inv), u.Query().Get("text"))
	})

	t.Run("WithoutPhone", func(t *testing.T) {
		inv := whatsapp.Invitation{BaseURL: "https://partylink.co", Token: "tok", EventTitle: "Party"}
		link := whatsapp.ShareLink(inv)

		assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	})
}
