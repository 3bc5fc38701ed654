package models

import "errors"

var (
	ErrDuplicateUser      = errors.New("user id already exists")
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrNotFound           = errors.New("post not found")
)
