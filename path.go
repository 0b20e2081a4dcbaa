package formfield

import (
	"strings"
)

// MaxDepth is the maximum number of bracket groups a field name may carry.
// Deeper keys are dropped by [ParseQuery] and rejected by [Compile].
const MaxDepth = 64

type pathSegment struct {
	Key   string
	Index bool // true for []
}

// parseName splits a field name into its base and bracket segments using the
// strict grammar. It reports false for any name a host parser would rewrite.
func parseName(name string) ([]pathSegment, bool) {
	i := strings.IndexByte(name, '[')
	if i == -1 {
		i = len(name)
	}

	base := name[:i]
	if !validBase(base) {
		return nil, false
	}

	path := []pathSegment{{Key: base}}
	rest := name[i:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, false
		}

		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, false
		}

		part := rest[1:j]
		if !validKey(part) {
			return nil, false
		}

		if part == "" {
			path = append(path, pathSegment{Index: true})
		} else {
			path = append(path, pathSegment{Key: part})
		}

		if len(path)-1 > MaxDepth {
			return nil, false
		}
		rest = rest[j+1:]
	}
	return path, true
}

func validBase(base string) bool {
	if base == "" || base[0] == ' ' {
		return false
	}
	return !strings.ContainsAny(base, " .\x00")
}

func validKey(key string) bool {
	if key == "" {
		return true
	}
	switch key[0] {
	case ' ', '\t', '\r', '\n':
		return false
	}
	return strings.IndexByte(key, 0) == -1
}

// splitKey splits a decoded query key the way a host parser does: the base
// runs up to the first bracket, and bracket groups are read until the first
// malformed one, whose remainder is ignored. It reports false when the key
// has no usable base or nests deeper than MaxDepth.
func splitKey(key string) ([]pathSegment, bool) {
	key = strings.TrimLeft(key, " ")

	i := strings.IndexByte(key, '[')
	if i == -1 || strings.IndexByte(key[i:], ']') == -1 {
		// An unterminated bracket is part of the base.
		i = len(key)
	}

	base := key[:i]
	if base == "" {
		return nil, false
	}

	path := []pathSegment{{Key: normaliseBase(base)}}
	rest := key[i:]
	for len(rest) > 0 && rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			break
		}

		part := strings.TrimLeft(rest[1:j], " \t\r\n")
		if part == "" {
			path = append(path, pathSegment{Index: true})
		} else {
			path = append(path, pathSegment{Key: part})
		}

		if len(path)-1 > MaxDepth {
			return nil, false
		}
		rest = rest[j+1:]
	}
	return path, true
}

func normaliseBase(base string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '[':
			return '_'
		}
		return r
	}, base)
}

func renderPath(path []string) string {
	var b strings.Builder
	b.WriteString(path[0])
	for _, p := range path[1:] {
		if p == "" {
			b.WriteString("[]")
		} else {
			b.WriteString("[")
			b.WriteString(p)
			b.WriteString("]")
		}
	}
	return b.String()
}
