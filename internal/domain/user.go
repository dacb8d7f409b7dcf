package domain

import "time"

// User is the domain entity for a user account. PasswordHash is an
// opaque bcrypt digest (salt and cost embedded); it must never be
// serialized to a client or written to logs.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
