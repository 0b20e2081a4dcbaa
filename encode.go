package formfield

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a single form value.
type Marshaler interface {
	MarshalForm() (string, error)
}

// Encode returns the form encoding of m. Keys keep their insertion order.
// Lists of scalars are written with empty brackets; lists holding maps or
// lists are written with explicit indices so that they parse back into the
// same paths.
//
// Form data has no way to express an empty map or list, so those are
// omitted. Keys that [ParseQuery] would read back differently (a top-level
// key that is empty, starts with a space or holds a dot, space or "[", and a
// nested key holding "]" or starting with whitespace) are skipped along with
// their values.
func Encode(m *Map) string {
	var pairs []string
	encodeNode(&pairs, nil, m)
	return strings.Join(pairs, "&")
}

func encodeNode(out *[]string, path []string, n Node) {
	switch v := n.(type) {
	case Scalar:
		*out = append(*out, url.QueryEscape(renderPath(path))+"="+url.QueryEscape(string(v)))
	case List:
		indexed := false
		for _, elem := range v {
			if _, ok := elem.(Scalar); !ok {
				indexed = true
				break
			}
		}
		for i, elem := range v {
			if elem == nil {
				continue
			}
			key := ""
			if indexed {
				key = strconv.Itoa(i)
			}
			encodeNode(out, append(path, key), elem)
		}
	case *Map:
		for _, k := range v.keys {
			if !encodableKey(k, len(path) == 0) {
				continue
			}
			encodeNode(out, append(path, k), v.values[k])
		}
	}
}

func encodableKey(key string, top bool) bool {
	if top {
		return validBase(key) && !strings.Contains(key, "[")
	}
	return key != "" && validKey(key) && !strings.Contains(key, "]")
}

// FromValue converts a Go value into a [Node]. Strings, numbers and booleans
// become scalars, slices and arrays become lists, and string-keyed maps and
// structs become maps. Struct fields are named by their "form" tag, as with
// encoding/json. Map keys are sorted. Nil pointers, interfaces and maps are
// absent, in which case FromValue returns a nil node.
func FromValue(v interface{}) (Node, error) {
	if v == nil {
		return nil, nil
	}
	if n, ok := v.(Node); ok {
		return n, nil
	}
	return fromValue(reflect.ValueOf(v), 0)
}

func fromValue(v reflect.Value, depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("form: value nested too deeply")
	}

	// Handle nil pointers early to avoid dereferencing them.
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
	}

	if v.CanInterface() {
		if n, ok := v.Interface().(Node); ok {
			return n, nil
		}
	}

	// Handle custom marshalers first.
	if s, ok, err := marshalScalar(v); ok {
		if err != nil {
			return nil, err
		}
		return Scalar(s), nil
	}

	// Dispatch based on the kind of the value.
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return fromValue(v.Elem(), depth)
	case reflect.Struct:
		return fromStruct(v, depth)
	case reflect.Map:
		return fromMap(v, depth)
	case reflect.Slice, reflect.Array:
		return fromSlice(v, depth)
	default:
		s, err := getScalar(v)
		if err != nil {
			return nil, err
		}
		return Scalar(s), nil
	}
}

func fromStruct(v reflect.Value, depth int) (Node, error) {
	m := NewMap()
	tags := tags(v)
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore || tag.Name == "" || !v.Type().Field(i).IsExported() {
			continue
		}
		fv := v.Field(i)
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		n, err := fromValue(fv, depth+1)
		if err != nil {
			return nil, err
		}
		m.Set(tag.Name, n)
	}
	return m, nil
}

func fromMap(v reflect.Value, depth int) (Node, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("form: map keys must be strings")
	}
	if v.IsNil() {
		return nil, nil
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	m := NewMap()
	for _, k := range keys {
		n, err := fromValue(v.MapIndex(k), depth+1)
		if err != nil {
			return nil, err
		}
		m.Set(k.String(), n)
	}
	return m, nil
}

func fromSlice(v reflect.Value, depth int) (Node, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil, nil
	}

	l := make(List, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		n, err := fromValue(v.Index(i), depth+1)
		if err != nil {
			return nil, err
		}
		l = append(l, n)
	}
	return l, nil
}

// marshalScalar reports whether v renders itself as a single value, and if so
// returns that value.
func marshalScalar(v reflect.Value) (string, bool, error) {
	if m, ok := asMarshaler(v); ok {
		s, err := m.MarshalForm()
		return s, true, err
	}
	if m, ok := asTextMarshaler(v); ok {
		b, err := m.MarshalText()
		return string(b), true, err
	}
	return "", false, nil
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	return nil, false
}

func asTextMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
			return m, true
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		return m, true
	}
	return nil, false
}

func getScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("form: unsupported type: %v", v.Type())
	}
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
