package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"partylink/config"
	"partylink/pkg/logger"

	"github.com/domodwyer/mailyak/v3"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New 有 SMTP host 時使用 SMTP，否則只寫 log（本機開發）
func New(cfg config.MailConfig) Mailer {
	if cfg.Host == "" {
		return NewLogMailer()
	}
	return NewSMTPMailer(cfg)
}

type SMTPMailerImpl struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.MailConfig) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailerImpl{
		addr: net.JoinHostPort(cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (m *SMTPMailerImpl) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := mailyak.New(m.addr, m.auth)
	mail.To(msg.To)
	mail.From(m.from)
	mail.Subject(msg.Subject)
	mail.Plain().Set(msg.Text)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

type LogMailerImpl struct{}

func NewLogMailer() Mailer {
	return &LogMailerImpl{}
}

func (m *LogMailerImpl) Send(ctx context.Context, msg Message) error {
	logger.WithComponent("mailer").Info("mail not sent, smtp disabled",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Text),
	)
	return nil
}

func LoginCodeMessage(to, code, link string) Message {
	return Message{
		To:      to,
		Subject: "Your Partylink login code",
		Text: fmt.Sprintf("Your Partylink login code is %s\n\nOr sign in with this link:\n%s\n\nIf you did not request this, you can ignore this email.",
			code, link),
	}
}
