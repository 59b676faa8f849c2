package models

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrEmptyContent = errors.New("message content is empty")
)
