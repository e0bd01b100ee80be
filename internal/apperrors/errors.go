package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrOverflow indicates that a monetary value does not fit the integer wire
// representation. Callers must not fall back to a wrapped or clamped value.
var ErrOverflow = errors.New("amount overflows minor unit range")
