// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate behavior that doesn't naturally fit within a
// single entity, keeping the domain free of infrastructure concerns.
package service

import "context"

// MailSender delivers a single email. Implementations are best-effort:
// when delivery is impossible (missing configuration, unreachable SMTP
// host) the message is logged to a fallback file instead of failing the
// calling workflow.
type MailSender interface {
	// Send delivers one HTML email to the given recipient.
	Send(ctx context.Context, to, subject, body string) error
}
