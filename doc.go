// Package optconst lets generic code treat a value known only at run time
// and a value fixed by its type through one contract.
//
// A type S implementing [OptionallyConst] over a value domain T is either
// dynamic, holding a T at run time, or static, a zero-size marker type that
// stands for exactly one T. Generic algorithms can ask the type itself:
//
//	func describe[S optconst.OptionallyConst[Color, S]](v S) string {
//		if c, ok := optconst.MaybeConst[S, Color](); ok {
//			return "const " + c.String()
//		}
//		return "dynamic " + v.IntoValue().String()
//	}
//
// Dynamic values come from [Dynamic] (any comparable T) or from an
// enumeration processed by the optconst generator. Static markers are the
// boolean reference family [ConstTypeBool] and the families the generator
// emits for const-block enumerations:
//
//	//go:generate go run optconst/cmd/optconst -type Color
//
//	//optconst:family ColorConst
//	type Color int
//
// which yields ColorConst[ColorConstTag0] (alias ColorConstRed) and so on,
// one instantiation per variant, in declaration order.
//
// Conversions never coerce. [TryFromValue] and [TryFromAnother] return a
// [*MismatchError] carrying the rejected original when the value does not
// match the marker's constant.
package optconst
