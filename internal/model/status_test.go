package model_test

import (
	"testing"

	"partylink/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		name       string
		attendance string
		method     model.InviteMethod
		status     model.InviteStatus
		want       string
	}{
		{"yes wins over delivery state", "yes", model.InviteMethodWhatsApp, model.InviteStatusWhatsAppSent, "Yes"},
		{"case insensitive", "MAYBE", model.InviteMethodManual, model.InviteStatusNotSent, "Maybe"},
		{"no on whatsapp", "No", model.InviteMethodWhatsApp, model.InviteStatusNotSent, "No"},
		{"pending whatsapp not sent", "pending", model.InviteMethodWhatsApp, model.InviteStatusNotSent, "Not sent"},
		{"pending whatsapp sent", "pending", model.InviteMethodWhatsApp, model.InviteStatusWhatsAppSent, "WhatsApp sent"},
		{"pending whatsapp acknowledged", "pending", model.InviteMethodWhatsApp, model.InviteStatusAcknowledged, "Invite acknowledged"},
		{"unknown whatsapp status", "", model.InviteMethodWhatsApp, model.InviteStatus("bogus"), "Not sent"},
		{"pending manual", "pending", model.InviteMethodManual, model.InviteStatusNotSent, "Pending"},
		{"unknown attendance manual", "declined", model.InviteMethodManual, model.InviteStatusNotSent, "Pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.DisplayStatus(tt.attendance, tt.method, tt.status)
			assert.Equal(t, tt.want, got)
			// 同樣輸入必須得到同樣結果
			assert.Equal(t, got, model.DisplayStatus(tt.attendance, tt.method, tt.status))
		})
	}
}

func TestGuestCountLabel(t *testing.T) {
	assert.Equal(t, "0 Guests in List", model.GuestCountLabel(0))
	assert.Equal(t, "1 Guest in List", model.GuestCountLabel(1))
	assert.Equal(t, "2 Guests in List", model.GuestCountLabel(2))
	assert.Equal(t, "12 Guests in List", model.GuestCountLabel(12))
}

func TestWhatsAppActionLabel(t *testing.T) {
	assert.Equal(t, "Send", model.WhatsAppActionLabel(model.InviteStatusNotSent))
	assert.Equal(t, "Resend", model.WhatsAppActionLabel(model.InviteStatusWhatsAppSent))
	assert.Equal(t, "Resend", model.WhatsAppActionLabel(model.InviteStatusAcknowledged))
}

func TestParseAttendanceStatus(t *testing.T) {
	assert.Equal(t, model.AttendanceYes, model.ParseAttendanceStatus(" YES "))
	assert.Equal(t, model.AttendancePending, model.ParseAttendanceStatus(""))
	assert.Equal(t, model.AttendancePending, model.ParseAttendanceStatus("unknown"))
	assert.Equal(t, "Maybe", model.AttendanceMaybe.Label())
	assert.Equal(t, "Pending", model.AttendanceStatus("x").Label())
}

func TestParseRSVPAnswer(t *testing.T) {
	s, ok := model.ParseRSVPAnswer("No")
	assert.True(t, ok)
	assert.Equal(t, model.AttendanceNo, s)

	_, ok = model.ParseRSVPAnswer("pending")
	assert.False(t, ok)
}

func TestInviteStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, model.InviteStatusNotSent.CanTransitionTo(model.InviteStatusWhatsAppSent))
	assert.True(t, model.InviteStatusWhatsAppSent.CanTransitionTo(model.InviteStatusAcknowledged))
	assert.False(t, model.InviteStatusWhatsAppSent.CanTransitionTo(model.InviteStatusNotSent))
	assert.False(t, model.InviteStatusAcknowledged.CanTransitionTo(model.InviteStatusWhatsAppSent))
	assert.False(t, model.InviteStatus("bogus").CanTransitionTo(model.InviteStatusWhatsAppSent))
}
