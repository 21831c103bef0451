package services

import "errors"

// Sentinel errors; controllers map these onto HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredential  = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateOrderCode = errors.New("order code collision")
	ErrRender             = errors.New("invoice rendering failed")
)
