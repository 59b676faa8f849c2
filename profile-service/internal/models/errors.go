package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidID       = errors.New("invalid id")
	ErrAlreadyExists   = errors.New("profile already exists")
	ErrAlreadyResolved = errors.New("request already resolved")
	ErrInvalidStatus   = errors.New("invalid request status")
)
