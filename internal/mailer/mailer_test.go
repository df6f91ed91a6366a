package mailer_test

import (
	"context"
	"testing"

	"partylink/config"
	"partylink/internal/mailer"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.IsType(t, &mailer.LogMailerImpl{}, mailer.New(config.MailConfig{}))
	assert.IsType(t, &mailer.SMTPMailerImpl{}, mailer.New(config.MailConfig{Host: "smtp.example.com", Port: "587"}))
}

func TestLogMailer_Send(t *testing.T) {
	err := mailer.NewLogMailer().Send(context.Background(), mailer.Message{To: "host@example.com", Subject: "hi", Text: "body"})
	assert.NoError(t, err)
}

func TestSMTPMailer_Send_CanceledContext(t *testing.T) {
	m := mailer.NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: "587"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, mailer.Message{To: "host@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoginCodeMessage(t *testing.T) {
	msg := mailer.LoginCodeMessage("host@example.com", "123456", "https://partylink.co/auth/callback?code=abc")

	assert.Equal(t, "host@example.com", msg.To)
	assert.Contains(t, msg.Text, "123456")
	assert.Contains(t, msg.Text, "https://partylink.co/auth/callback?code=abc")
}
