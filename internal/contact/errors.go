package contact

import "errors"

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("already exists")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidArgument = errors.New("invalid argument")
)
