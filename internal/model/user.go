package model

import "time"

// UserID uniquely identifies a staff user
type UserID int64

// User represents a staff account that can manage course records
type User struct {
	ID        UserID
	Username  string // login username, unique (immutable)
	Password  string // stored verbatim; see the comparison site in services/auth
	CreatedAt time.Time
}
