package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidQuote        = errors.New("invalid quote")

	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
