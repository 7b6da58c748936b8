package models

import "time"

// Session is the client's persisted login state.
type Session struct {
	Token   string    `json:"token"`
	User    Identity  `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}
