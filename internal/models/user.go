package models

import (
	"fmt"
	"time"
)

type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	Guest        bool      `json:"guest"`
}

// NewGuest creates an unregistered user with a timestamp-derived id.
// Guests behave like registered users everywhere else.
func NewGuest(now time.Time, suffix string) *User {
	id := fmt.Sprintf("guest_%s_%s", now.Format("20060102150405"), suffix)
	return &User{
		UserID:       id,
		Name:         "게스트",
		RegisteredAt: now,
		Guest:        true,
	}
}
