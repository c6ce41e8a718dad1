// Package mail delivers the transactional emails used by the account
// workflows: OTP codes and password reset links.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"crewdesk/config"
	"crewdesk/internal/domain/service"
)

// Mailer sends HTML email over SMTP. When SMTP is not configured, or a
// send fails, the message is appended to a fallback log file so the
// workflow that requested it still completes.
type Mailer struct {
	cfg    config.MailConfig
	logger *slog.Logger

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer is the constructor for Mailer.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.MailSender {
	return &Mailer{
		cfg:    cfg.Mail,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send delivers one HTML email. A failed or unconfigured delivery falls
// back to the log file and is not reported as an error to the caller.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.Username == "" {
		m.logger.Warn("smtp not configured, writing email to fallback log",
			slog.String("to", to),
			slog.String("subject", subject),
		)

		return m.writeFallback(to, subject, body)
	}

	if err := m.deliver(to, subject, body); err != nil {
		m.logger.Error("smtp delivery failed, writing email to fallback log",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return m.writeFallback(to, subject, body)
	}

	m.logger.Info("email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

func (m *Mailer) deliver(to, subject, body string) error {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	fromHeader := from
	if m.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.cfg.FromName, from)
	}

	var msg strings.Builder
	msg.WriteString("From: " + fromHeader + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	return nil
}

func (m *Mailer) writeFallback(to, subject, body string) error {
	f, err := os.OpenFile(m.cfg.FallbackLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open fallback email log")
	}
	defer f.Close()

	entry := fmt.Sprintf("--- %s ---\nTo: %s\nSubject: %s\n\n%s\n\n",
		time.Now().Format(time.RFC3339), to, subject, body)
	if _, err := f.WriteString(entry); err != nil {
		return errors.Wrap(err, "append fallback email log")
	}

	return nil
}
