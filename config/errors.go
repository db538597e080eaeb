package config

import "errors"

// ErrUnknownKind indicates a profile kind other than polynomial, algebraic or closedform.
var ErrUnknownKind = errors.New("config: unknown expression kind")

// ErrInvalidConfig indicates a profile field outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid profile")
