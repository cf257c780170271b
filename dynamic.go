package optconst

import "fmt"

// Dynamic holds a value of T known only at run time. It is the default,
// never-const implementation of OptionallyConst for any comparable T.
type Dynamic[T comparable] struct {
	value T
}

// Dyn wraps v.
func Dyn[T comparable](v T) Dynamic[T] {
	return Dynamic[T]{value: v}
}

// MaybeConst always reports false.
func (Dynamic[T]) MaybeConst() (T, bool) {
	var zero T
	return zero, false
}

// IntoValue returns the wrapped value.
func (d Dynamic[T]) IntoValue() T {
	return d.value
}

// TryFromValue always succeeds.
func (Dynamic[T]) TryFromValue(value T) (Dynamic[T], error) {
	return Dynamic[T]{value: value}, nil
}

func (d Dynamic[T]) String() string {
	return fmt.Sprint(d.value)
}
