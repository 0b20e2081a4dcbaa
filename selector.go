package formfield

import (
	"strconv"
)

// InvalidNameError describes a field name that does not round-trip through
// the bracket grammar, and so cannot address any value a conforming parser
// would produce.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "form: invalid field name " + strconv.Quote(e.Name)
}

// Selector is the compiled address of a field. The zero value matches
// nothing; selectors are built with [Compile].
type Selector struct {
	segments []string

	// Number of segments consumed before the repeated list, or zero when the
	// field is single valued.
	repeat int
}

// Compile parses a field name into a [Selector]. Bare names ("foo") address a
// top-level scalar, named brackets ("foo[bar]") address nested values, and a
// single empty bracket pair ("foo[]", "foo[][bar]") marks the depth at which
// the value repeats. Names a host parser would rewrite (a leading bracket, a
// dot or space in the base name, an unterminated bracket, trailing text, or
// more than one empty bracket pair) are rejected with an [InvalidNameError].
func Compile(name string) (Selector, error) {
	path, ok := parseName(name)
	if !ok {
		return Selector{}, &InvalidNameError{Name: name}
	}

	s := Selector{segments: make([]string, 0, len(path))}
	for _, seg := range path {
		if !seg.Index {
			s.segments = append(s.segments, seg.Key)
			continue
		}
		if s.repeat != 0 {
			return Selector{}, &InvalidNameError{Name: name}
		}
		s.repeat = len(s.segments)
	}

	if s.String() != name {
		return Selector{}, &InvalidNameError{Name: name}
	}
	return s, nil
}

// MustCompile is like [Compile] but panics if the name is invalid.
func MustCompile(name string) Selector {
	s, err := Compile(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Segments returns the literal path segments, starting with the top-level key.
func (s Selector) Segments() []string {
	return append([]string(nil), s.segments...)
}

// RepeatAt reports the number of segments consumed before the repeated list,
// if the field is repeated.
func (s Selector) RepeatAt() (int, bool) {
	return s.repeat, s.repeat != 0
}

// IsZero reports whether s is the zero Selector.
func (s Selector) IsZero() bool {
	return len(s.segments) == 0
}

// String renders the selector as a field name.
func (s Selector) String() string {
	if s.IsZero() {
		return ""
	}

	path := make([]string, 0, len(s.segments)+1)
	for i, seg := range s.segments {
		path = append(path, seg)
		if i+1 == s.repeat {
			path = append(path, "")
		}
	}
	return renderPath(path)
}
