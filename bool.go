package optconst

import "strconv"

// BoolTag is the closed set of tags indexing ConstTypeBool.
type BoolTag interface {
	TagFalse | TagTrue
	boolConst() bool
}

// TagFalse indexes the false marker.
type TagFalse struct{}

// TagTrue indexes the true marker.
type TagTrue struct{}

func (TagFalse) boolConst() bool { return false }
func (TagTrue) boolConst() bool  { return true }

// ConstTypeBool is the const marker family of bool. It is the hand-written
// reference for the families the generator emits for enumerations.
type ConstTypeBool[B BoolTag] struct{}

type (
	// ConstFalse stands for false.
	ConstFalse = ConstTypeBool[TagFalse]
	// ConstTrue stands for true.
	ConstTrue  = ConstTypeBool[TagTrue]
)

var (
	_ Const[bool] = ConstFalse{}
	_ Const[bool] = ConstTrue{}
	_             = Check[ConstFalse, bool]
	_             = Check[ConstTrue, bool]
)

// ConstValue implements Const[bool].
func (ConstTypeBool[B]) ConstValue() bool {
	var b B
	return b.boolConst()
}

// MaybeConst always reports the marker's constant.
func (c ConstTypeBool[B]) MaybeConst() (bool, bool) {
	return c.ConstValue(), true
}

// IntoValue returns the marker's constant.
func (c ConstTypeBool[B]) IntoValue() bool {
	return c.ConstValue()
}

// TryFromValue succeeds only when value equals the marker's constant.
func (c ConstTypeBool[B]) TryFromValue(value bool) (ConstTypeBool[B], error) {
	if value != c.ConstValue() {
		return c, Mismatch(value, c.ConstValue())
	}

	return c, nil
}

func (c ConstTypeBool[B]) String() string {
	return "ConstTypeBool[" + strconv.FormatBool(c.ConstValue()) + "]"
}

// ConstBool returns the marker instance for b. The marker type depends on
// b, so the result is only a Valuer[bool]: code that needs the marker as a
// type argument, such as MaybeConst[S, bool], names ConstTrue or ConstFalse
// directly.
func ConstBool(b bool) Valuer[bool] {
	if b {
		return ConstTrue{}
	}

	return ConstFalse{}
}
