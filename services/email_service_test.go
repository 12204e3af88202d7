package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMailerReturnsDisabledMailerWhenUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.EmailEnabled = false

	mailer := NewMailer(cfg)

	_, ok := mailer.(*disabledMailer)
	assert.True(t, ok, "unconfigured email should produce the no-op mailer")
}

func TestNewMailerReturnsDisabledMailerWithoutHost(t *testing.T) {
	cfg := testConfig()
	cfg.EmailEnabled = true
	cfg.EmailHost = ""

	mailer := NewMailer(cfg)

	_, ok := mailer.(*disabledMailer)
	assert.True(t, ok)
}

func TestNewMailerReturnsSMTPMailerWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.EmailEnabled = true
	cfg.EmailHost = "smtp.example.com"
	cfg.EmailPort = 587
	cfg.EmailUser = "noreply@cleaningmadeasy.com"

	mailer := NewMailer(cfg)

	_, ok := mailer.(*SMTPMailer)
	assert.True(t, ok)
}

func TestDisabledMailerAlwaysReportsSuccess(t *testing.T) {
	mailer := &disabledMailer{}

	err := mailer.Send([]string{"anyone@example.com"}, "subject", "text", "<p>html</p>")

	assert.NoError(t, err)
}
