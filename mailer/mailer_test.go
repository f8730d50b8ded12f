package mailer

import (
	"context"
	"net"
	"testing"
	"time"
	"transcript-summary-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

func fullConfig() config.MailSettings {
	return config.MailSettings{
		Username: "bot@example.com",
		Password: "secret",
		From:     "bot@example.com",
		Server:   "smtp.example.com",
		Port:     587,
	}
}

func TestCompose(t *testing.T) {
	msg := Compose([]string{"a@example.com", "b@example.com"}, "edited summary")
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.To)
	assert.Equal(t, "AI-Generated Summary", msg.Subject)
	assert.Equal(t, "Here is the summary you requested:\n\nedited summary", msg.Body)
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.MailSettings)
		want   bool
	}{
		{name: "complete", mutate: func(*config.MailSettings) {}, want: true},
		{name: "no username", mutate: func(c *config.MailSettings) { c.Username = "" }, want: false},
		{name: "no password", mutate: func(c *config.MailSettings) { c.Password = "" }, want: false},
		{name: "no server", mutate: func(c *config.MailSettings) { c.Server = "" }, want: false},
		{name: "no from is still configured", mutate: func(c *config.MailSettings) { c.From = "" }, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fullConfig()
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, NewSMTPSender(cfg, zap.NewNop()).Configured())
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	cfg := fullConfig()
	cfg.Server = ""
	err := NewSMTPSender(cfg, zap.NewNop()).Send(context.Background(), Compose([]string{"a@example.com"}, "x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildMsg(t *testing.T) {
	s := NewSMTPSender(fullConfig(), zap.NewNop())
	m, err := s.buildMsg(Compose([]string{"a@example.com", "b@example.com"}, "body"))
	require.NoError(t, err)

	to := m.GetToString()
	assert.Len(t, to, 2)
	assert.Equal(t, []string{Subject}, m.GetGenHeader(mail.HeaderSubject))
}

func TestBuildMsgInvalidSender(t *testing.T) {
	cfg := fullConfig()
	cfg.From = "not an address"
	_, err := NewSMTPSender(cfg, zap.NewNop()).buildMsg(Compose([]string{"a@example.com"}, "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sender address")
}

func TestSendUnreachableServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := fullConfig()
	cfg.Server = "127.0.0.1"
	cfg.Port = port

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = NewSMTPSender(cfg, zap.NewNop()).Send(ctx, Compose([]string{"a@example.com"}, "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp send")
}
