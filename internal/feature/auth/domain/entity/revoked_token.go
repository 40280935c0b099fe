package entity

import "time"

// RevokedToken records a refresh token that was blacklisted before its
// natural expiry, either by logout or by rotation on refresh.
type RevokedToken struct {
	JTI       string    // Refresh token identifier (uuid, the jti claim)
	UserID    uint      // Owner of the token
	ExpiresAt time.Time // Natural expiry of the underlying token
	RevokedAt time.Time // When revocation happened
}

// Expired reports whether the underlying token would have expired anyway.
// Expired entries can be garbage collected from persistent stores.
func (t *RevokedToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
