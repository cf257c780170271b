package optconst

// Valuer is the value-level view shared by dynamic values and const markers.
type Valuer[T comparable] interface {
	// MaybeConst reports the constant the type stands for. Dynamic types
	// report false. The result depends only on the type, never on the
	// receiver, so it may be called on the zero value.
	MaybeConst() (T, bool)
	// IntoValue returns the held value for dynamic types and the constant
	// for const markers.
	IntoValue() T
}

// OptionallyConst is implemented by a type S that is either a run-time
// holder of a T or a const marker standing for exactly one T.
//
// S is the implementing type itself, which lets TryFromValue act as a
// constructor when called on the zero value of S.
//
// A concrete type is dynamic or static, never both. Nothing in the type
// system enforces this; Dynamic, the generated enumeration methods and the
// generated marker families each take exactly one side.
type OptionallyConst[T comparable, S any] interface {
	comparable
	Valuer[T]
	// TryFromValue builds an S from a run-time value. Dynamic types always
	// succeed. Const markers succeed only when value equals their constant
	// and otherwise return a *MismatchError[T] holding value.
	TryFromValue(value T) (S, error)
}

// Const is implemented by types that stand for exactly one value of T.
type Const[T comparable] interface {
	ConstValue() T
}

// Check fails to compile when instantiated with an S that does not implement
// OptionallyConst[T, S]. Generated code references it once per type.
func Check[S OptionallyConst[T, S], T comparable]() {}

// MaybeConst returns the constant S stands for, if any.
func MaybeConst[S OptionallyConst[T, S], T comparable]() (T, bool) {
	var s S
	return s.MaybeConst()
}

// IsConst reports whether S is a const marker.
func IsConst[S OptionallyConst[T, S], T comparable]() bool {
	_, ok := MaybeConst[S, T]()
	return ok
}

// ConstValue returns the constant of the marker type S.
func ConstValue[S Const[T], T comparable]() T {
	var s S
	return s.ConstValue()
}

// IntoValue extracts the value of v.
func IntoValue[T comparable](v Valuer[T]) T {
	return v.IntoValue()
}

// TryFromValue constructs an S from value.
func TryFromValue[S OptionallyConst[T, S], T comparable](value T) (S, error) {
	var s S
	return s.TryFromValue(value)
}

// TryFromAnother bridges two implementors of the same value domain. The
// value of other is offered to S; on mismatch the returned error holds
// other itself rather than its extracted value.
func TryFromAnother[S OptionallyConst[T, S], T comparable, U Valuer[T]](other U) (S, error) {
	var s S

	out, err := s.TryFromValue(other.IntoValue())
	if err != nil {
		want, _ := s.MaybeConst()
		return out, &MismatchError[U]{Rejected: other, Constant: want}
	}

	return out, nil
}
