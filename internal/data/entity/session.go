package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an access token issued by the account service.
type Session struct {
	Token     uuid.UUID  `db:"token"`
	UserID    int64      `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}
