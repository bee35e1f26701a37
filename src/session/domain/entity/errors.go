package entity

import "errors"

var (
	ErrRegisterInUse      = errors.New("register is already owned by another user")
	ErrRegisterNotFound   = errors.New("register not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoOpenSession      = errors.New("no open session for this workspace")
	ErrInvalidCashAmount  = errors.New("cash amount must be a non-negative number")
	ErrRegisterIDRequired = errors.New("register_id is required")
)
