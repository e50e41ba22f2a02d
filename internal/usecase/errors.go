package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrInternal       = errors.New("internal error")
)
