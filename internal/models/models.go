package models

import "time"

type User struct {
	UserID       string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Identity is the authenticated principal bound to a session.
type Identity struct {
	UserID string
	Name   string
}

type Post struct {
	BlogID        int64
	CreatorUserID string
	CreatorName   string
	Title         string
	Body          string
	DateCreated   time.Time
}
