// Package directive parses the optconst attribute attached to an
// enumeration's doc comment:
//
//	//optconst:annotate //nolint:recvcheck
//	//optconst:family ColorConst
//	type Color int
//
// The family directive names the generated marker-type family and must
// appear exactly once with a single identifier. Annotate directives are
// optional and repeatable; each carries a Go line comment that is copied
// verbatim above the generated family type.
package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"optconst/internal/suggest"
)

// Directive heads.
const (
	Prefix   = "//optconst:"
	Family   = Prefix + "family"
	Annotate = Prefix + "annotate"
)

// Sentinel errors, matched with errors.Is by callers that map them to
// diagnostic codes.
var (
	ErrMissingFamily       = errors.New("missing family directive")
	ErrMalformedFamily     = errors.New("malformed family directive")
	ErrMalformedAnnotation = errors.New("malformed annotate directive")
	ErrUnknownDirective    = errors.New("unknown optconst directive")
)

// Attribute is the parsed attribute of one enumeration.
type Attribute struct {
	// Family is the identifier of the generated marker-type family.
	Family string
	// Annotations are Go line comments emitted above the family type, in order.
	Annotations []string
}

// Validate checks a fully assembled attribute, whichever source it came from.
func (a Attribute) Validate() error {
	if a.Family == "" {
		return ErrMissingFamily
	}

	if err := checkIdent(a.Family); err != nil {
		return err
	}

	for _, ann := range a.Annotations {
		if err := checkAnnotation(ann); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether a and b describe the same family with the same
// annotations.
func (a Attribute) Equal(b Attribute) bool {
	if a.Family != b.Family || len(a.Annotations) != len(b.Annotations) {
		return false
	}

	for i := range a.Annotations {
		if a.Annotations[i] != b.Annotations[i] {
			return false
		}
	}

	return true
}

// FromDoc parses the directives in a doc comment group. found is false when
// the group holds no optconst directive at all.
func FromDoc(doc *ast.CommentGroup) (attr Attribute, found bool, err error) {
	if doc == nil {
		return Attribute{}, false, nil
	}

	lines := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		lines = append(lines, c.Text)
	}

	return Parse(lines)
}

// Parse parses raw comment lines (each including its leading "//").
// Lines that are not optconst directives are ignored.
func Parse(lines []string) (attr Attribute, found bool, err error) {
	familySeen := false

	for _, line := range lines {
		if !strings.HasPrefix(line, Prefix) {
			continue
		}

		found = true
		head, rest := split(line)

		switch head {
		case Family:
			if familySeen {
				return Attribute{}, true, fmt.Errorf("%w: family declared more than once", ErrMalformedFamily)
			}

			familySeen = true

			fields := strings.Fields(rest)
			if len(fields) != 1 {
				return Attribute{}, true, fmt.Errorf("%w: want a single identifier, got %q", ErrMalformedFamily, rest)
			}

			if err := checkIdent(fields[0]); err != nil {
				return Attribute{}, true, err
			}

			attr.Family = fields[0]

		case Annotate:
			ann := strings.TrimSpace(rest)
			if err := checkAnnotation(ann); err != nil {
				return Attribute{}, true, err
			}

			attr.Annotations = append(attr.Annotations, ann)

		default:
			return Attribute{}, true, unknownDirective(head)
		}
	}

	if found && !familySeen {
		return attr, true, ErrMissingFamily
	}

	return attr, found, nil
}

func unknownDirective(head string) error {
	name := strings.TrimPrefix(head, Prefix)
	known := []string{strings.TrimPrefix(Family, Prefix), strings.TrimPrefix(Annotate, Prefix)}

	if hint := suggest.Closest(name, known, 1); len(hint) > 0 {
		return fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownDirective, head, Prefix+hint[0])
	}

	return fmt.Errorf("%w: %s", ErrUnknownDirective, head)
}

// split separates the directive head from its arguments.
func split(line string) (head, rest string) {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], line[i+1:]
	}

	return line, ""
}

func checkIdent(name string) error {
	if !token.IsIdentifier(name) || name == "_" {
		return fmt.Errorf("%w: %q is not a valid identifier", ErrMalformedFamily, name)
	}

	return nil
}

func checkAnnotation(ann string) error {
	switch {
	case ann == "":
		return fmt.Errorf("%w: empty annotation", ErrMalformedAnnotation)
	case !strings.HasPrefix(ann, "//"):
		return fmt.Errorf("%w: %q is not a line comment", ErrMalformedAnnotation, ann)
	case strings.ContainsAny(ann, "\r\n"):
		return fmt.Errorf("%w: annotation spans several lines", ErrMalformedAnnotation)
	case strings.HasPrefix(ann, Prefix):
		return fmt.Errorf("%w: %q would be read back as a directive", ErrMalformedAnnotation, ann)
	}

	return nil
}
