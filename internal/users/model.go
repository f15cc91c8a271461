package users

import (
	"errors"
	"time"
)

// ErrNotFound indicates no user row matched.
var ErrNotFound = errors.New("user not found")

// User is an identity row. Rows are written by the sign-in flow and read
// everywhere else.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
