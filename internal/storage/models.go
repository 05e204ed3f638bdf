package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Message is one chat exchange: the user's text, the intent it resolved
// to, and the coach's reply. History is append-only.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"message"`
	Intent    string    `json:"intent"`
	Response  string    `json:"response"`
}
