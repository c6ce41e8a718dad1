package service

import "time"

// Identity is the set of claims carried by an authenticated session
// cookie: the user's display name, email, and stable numeric id.
type Identity struct {
	UserID int
	Name   string
	Email  string
}

// Pending-token purposes. A pending token marks an in-flight, not yet
// authenticated workflow step, such as "this browser is mid-way through
// OTP verification for this email".
const (
	PurposeVerifyEmail = "verify_email"
	PurposeUserCreate  = "user_create"
)

// SessionService signs and verifies the tokens that back the session
// cookie and the short-lived pending-workflow cookies. This abstracts
// the token format from handlers and use cases.
type SessionService interface {
	// IssueSession creates a signed session token for the identity.
	IssueSession(identity Identity) (string, error)

	// ParseSession verifies a session token and returns its identity.
	ParseSession(token string) (*Identity, error)

	// SessionTTL returns the configured session lifetime.
	SessionTTL() time.Duration

	// IssuePending creates a signed token carrying an opaque payload for
	// the given workflow purpose, valid for ttl.
	IssuePending(purpose, payload string, ttl time.Duration) (string, error)

	// ParsePending verifies a pending token for the given purpose and
	// returns its payload.
	ParsePending(purpose, token string) (string, error)
}
