package formfield

import (
	"net/url"
	"strconv"
	"strings"
)

// Pair is one decoded key and value of a query string.
type Pair struct {
	Key   string
	Value string
}

// SplitQuery splits a query string on "&" and then on the first "=", and
// percent-decodes both halves. Pairs whose key decodes to the empty string are
// dropped. A key without "=" has an empty value. Decoding is lenient: a "%"
// not followed by two hex digits is kept as is.
func SplitQuery(query string) []Pair {
	var pairs []Pair
	for _, part := range strings.Split(query, "&") {
		rawKey, rawValue, _ := strings.Cut(part, "=")

		key := unescape(rawKey)
		if key == "" {
			continue
		}
		pairs = append(pairs, Pair{Key: key, Value: unescape(rawValue)})
	}
	return pairs
}

// unescape decodes "+" and "%XX" sequences, keeping malformed escapes.
func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParseQuery parses a query string into a nested [Map] following the
// bracket convention of HTML forms:
//
//	a=1&a=2         {a: [1, 2]}
//	a[x]=1          {a: {x: 1}}
//	a[]=1&a[]=2     {a: [1, 2]}
//	a[x]=1&a[x]=2   {a: {x: 2}}
//
// Only repeated top-level keys accumulate; repeated nested keys overwrite.
// Text after a malformed bracket group is ignored, and keys nested deeper
// than [MaxDepth] are dropped.
func ParseQuery(query string) *Map {
	m := NewMap()
	for _, p := range SplitQuery(strings.TrimSpace(query)) {
		m.insert(p.Key, p.Value)
	}
	return m
}

// insert stores a single decoded pair.
func (m *Map) insert(key, val string) {
	path, ok := splitKey(key)
	if !ok {
		return
	}

	base := path[0].Key
	existing, _ := m.Get(base)
	if len(path) == 1 {
		m.Set(base, appendRepeated(existing, val))
		return
	}
	m.Set(base, assign(existing, path[1:], val))
}

// appendRepeated accumulates a repeated top-level key into a list.
func appendRepeated(existing Node, val string) Node {
	switch v := existing.(type) {
	case Scalar:
		return List{v, Scalar(val)}
	case List:
		return append(v, Scalar(val))
	default:
		return Scalar(val)
	}
}

// assign stores val at path below n and returns the updated node. Scalars
// and absent values on the way are replaced by containers.
func assign(n Node, path []pathSegment, val string) Node {
	// If the path is empty, we are at a leaf node.
	if len(path) == 0 {
		return Scalar(val)
	}

	// Get the next segment of the path.
	seg := path[0]

	// Dispatch based on the kind of the node.
	switch v := n.(type) {
	case List:
		return assignListValue(v, seg, path[1:], val)
	case *Map:
		return assignMapValue(v, seg, path[1:], val)
	}

	if seg.Index {
		return List{assign(nil, path[1:], val)}
	}
	return assignMapValue(NewMap(), seg, path[1:], val)
}

// assign a list element identified by a path segment. A key that is not the
// index of an existing element or the next one turns the list into a map.
func assignListValue(l List, seg pathSegment, path []pathSegment, val string) Node {
	if seg.Index {
		return append(l, assign(nil, path, val))
	}

	i, ok := parseIndex(seg.Key)
	switch {
	case ok && i < len(l):
		l[i] = assign(l[i], path, val)
		return l
	case ok && i == len(l):
		return append(l, assign(nil, path, val))
	}

	m := NewMap()
	for i, elem := range l {
		m.Set(strconv.Itoa(i), elem)
	}
	return assignMapValue(m, seg, path, val)
}

// assign a map value identified by a path segment. An empty bracket appends
// at the next integer key.
func assignMapValue(m *Map, seg pathSegment, path []pathSegment, val string) Node {
	key := seg.Key
	if seg.Index {
		key = strconv.Itoa(m.next)
	}

	existing, _ := m.Get(key)
	m.Set(key, assign(existing, path, val))
	return m
}
