package domain

import "time"

// User represents a registered account owner. Owner ids are integers assigned
// by the store; every scored transaction, summary and breakdown is keyed by
// the owning user's id.
type User struct {
	UserID       int64  `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// Refresh token state; hash only, the raw token is never stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
