package optconst

import (
	"errors"
	"fmt"
)

// ErrMismatch matches every *MismatchError through errors.Is, whatever its
// type parameter.
var ErrMismatch = errors.New("optconst: value does not match constant")

// MismatchError is returned when a value is offered to a const marker whose
// constant differs. Rejected is the original input, unchanged.
type MismatchError[V any] struct {
	Rejected V
	Constant any
}

// Mismatch builds the error a const marker returns from TryFromValue.
func Mismatch[T comparable](rejected, constant T) error {
	return &MismatchError[T]{Rejected: rejected, Constant: constant}
}

// Error implements error.
func (e *MismatchError[V]) Error() string {
	return fmt.Sprintf("optconst: %v does not match constant %v", e.Rejected, e.Constant)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError[V]) Is(target error) bool {
	return target == ErrMismatch
}

// Rejected recovers the original value carried by a *MismatchError[V] in
// err's chain.
func Rejected[V any](err error) (V, bool) {
	var me *MismatchError[V]
	if errors.As(err, &me) {
		return me.Rejected, true
	}

	var zero V
	return zero, false
}
