package mailing

import (
	"Pantry-Backend/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMailConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_SENDER_NAME", "Pantry")
	t.Setenv("SMTP_AUTH_EMAIL", "no-reply@example.com")
	t.Setenv("SMTP_AUTH_PASSWORD", "hunter2")
	_ = utils.LoadConfig("missing.yaml")

	assert.Equal(t, MailConfig{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     2525,
		SMTPSender:   "Pantry",
		SMTPEmail:    "no-reply@example.com",
		SMTPPassword: "hunter2",
	}, LoadMailConfig())
}

func TestLoadMailConfig_DefaultPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "")
	_ = utils.LoadConfig("missing.yaml")

	assert.Equal(t, 587, LoadMailConfig().SMTPPort)
}

func TestSendMail_UnreachableServer(t *testing.T) {
	mailer := NewMailer(MailConfig{SMTPHost: "127.0.0.1", SMTPPort: 1, SMTPEmail: "a@example.com"})
	assert.Error(t, mailer.SendMail("b@example.com", "hi", "<p>hi</p>"))
}
