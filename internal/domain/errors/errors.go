package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrTransport          = errors.New("store api unreachable")
	ErrMalformedResponse  = errors.New("malformed store api response")
)
