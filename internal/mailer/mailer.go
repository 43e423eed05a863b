package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/ivanausecha/tidytask-backend/internal/mailer Mailer

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/ivanausecha/tidytask-backend/config"
)

type Mailer interface {
	SendPasswordReset(toEmail, resetURL string) error
}

// EmailMailer sends mail over SMTP. When the SMTP credentials are absent the
// send is logged and skipped instead of failing, so environments without an
// email transport keep working.
type EmailMailer struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewEmailMailer(cfg *config.Config, logger *slog.Logger) *EmailMailer {
	return &EmailMailer{cfg: cfg, logger: logger}
}

func (m *EmailMailer) SendPasswordReset(toEmail, resetURL string) error {
	if m.cfg.SMTPHost == "" || m.cfg.SMTPUser == "" || m.cfg.SMTPFrom == "" {
		m.logger.Warn("smtp config missing, skipping password reset email",
			slog.String("to", toEmail))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPFrom)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "[TidyTask] Password reset request")

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 520px; margin: 0 auto; padding: 16px;">
    <h2>Reset your TidyTask password</h2>
    <p>Use the link below to choose a new password:</p>
    <p><a href="%s">%s</a></p>
    <p>The link is valid for 1 hour. If you did not request a reset, you can
    ignore this email.</p>
  </div>
</body>
</html>`, resetURL, resetURL)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("password reset email sent", slog.String("to", toEmail))
	return nil
}
