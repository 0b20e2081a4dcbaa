package formfield

import (
	"fmt"
	"io"
)

// Decoder reads form-urlencoded data from an [io.Reader] and parses it into a
// [Map].
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the form-urlencoded data from the underlying [io.Reader] and
// parses it with [ParseQuery].
func (d *Decoder) Decode() (*Map, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("form: failed to read body: %w", err)
	}

	return ParseQuery(string(body)), nil
}

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode converts v with [FromValue] and writes its encoding, as produced by
// [Encode], to the underlying [io.Writer]. The top-level value must convert
// to a [Map]: a *Map, a struct or a string-keyed map.
func (e *Encoder) Encode(v interface{}) error {
	n, err := FromValue(v)
	if err != nil {
		return err
	}

	m, ok := n.(*Map)
	if !ok {
		return fmt.Errorf("form: top-level value must be struct or map")
	}

	_, err = io.WriteString(e.w, Encode(m))
	return err
}
