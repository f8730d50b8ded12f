// Package mailer delivers shared summaries to recipients over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"transcript-summary-api/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const (
	Subject    = "AI-Generated Summary"
	bodyPrefix = "Here is the summary you requested:\n\n"
)

var ErrNotConfigured = errors.New("mailer: smtp username, password and server must all be set")

// Message is a plain-text email ready for delivery.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Compose builds the summary email sent to recipients.
func Compose(recipients []string, content string) Message {
	return Message{
		To:      recipients,
		Subject: Subject,
		Body:    bodyPrefix + content,
	}
}

type Sender interface {
	// Configured reports whether Send can attempt delivery at all.
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends through a credentialed relay using mandatory STARTTLS.
type SMTPSender struct {
	cfg    config.MailSettings
	logger *zap.Logger
}

func NewSMTPSender(cfg config.MailSettings, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

func (s *SMTPSender) Configured() bool {
	return s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.Server != ""
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Server,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	s.logger.Info("Summary email sent",
		zap.Int("recipients", len(msg.To)),
		zap.String("server", s.cfg.Server))
	return nil
}

func (s *SMTPSender) buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
