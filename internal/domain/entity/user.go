// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in. A user starts out unverified at
// signup and becomes verified once the emailed OTP is confirmed.
//
// The password is stored and compared in cleartext. This mirrors the
// behavior of the system being reproduced and is a known weakness, not
// something this codebase attempts to fix.
type User struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	Otp             string     `json:"otp,omitempty"`
	OtpExpiry       *time.Time `json:"otpExpiry,omitempty"`
}

// ClearOtp removes any outstanding OTP or reset token from the user.
func (u *User) ClearOtp() {
	u.Otp = ""
	u.OtpExpiry = nil
}

// OtpValid reports whether the given code matches the stored OTP and the
// expiry has not passed. The comparison is exact and the expiry check is
// strict: a code presented at the exact expiry instant is rejected.
func (u *User) OtpValid(code string, now time.Time) bool {
	if u.Otp == "" || u.OtpExpiry == nil {
		return false
	}

	return u.Otp == code && u.OtpExpiry.After(now)
}
