// Package gen renders the const marker families of analysed enumerations.
//
// Generation uses text/template + go/format, so the output is gofmt-clean
// and byte-identical across runs for the same input.
//
// For an enumeration Color with family ColorConst one file declares:
//   - ColorConstTag, the closed tag constraint, and one tag type per variant
//   - ColorConst[D ColorConstTag] and the aliases ColorConstRed, ...
//   - ConstValue, MaybeConst, IntoValue and TryFromValue on the family
//   - the dynamic MaybeConst, IntoValue and TryFromValue on Color
//   - TryIntoColorConst[D], the tagged conversion
package gen
