package resolver

import "errors"

var (
	// ErrNullClass is returned when resolving against the null reference.
	ErrNullClass = errors.New("null class reference")
	// ErrNilName is returned when the member name symbol is nil.
	ErrNilName = errors.New("nil member name")
)
