package models

import "errors"

// Custom errors
var (
	ErrInsufficientData   = errors.New("not enough draws for the requested split")
	ErrInvalidDraw        = errors.New("invalid draw")
	ErrInvalidCombination = errors.New("invalid combination")
	ErrUnknownStrategy    = errors.New("unknown strategy")
	ErrUnknownGame        = errors.New("unknown game")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateKey       = errors.New("duplicate key violation")
)
