package dv01

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every constraint violation matches via
// errors.Is. Callers that only care about "bad input vs something else"
// can test against this alone.
var ErrInvalidInput = errors.New("invalid input")

// ErrDivisionByZero marks a zero futures DV01 handed to RecommendHedgeLots.
// It is a subtype of ErrInvalidInput.
var ErrDivisionByZero = fmt.Errorf("division by zero: %w", ErrInvalidInput)

// InputError reports which input violated its constraint and why.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
