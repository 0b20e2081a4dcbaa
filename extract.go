package formfield

// Extract returns the scalar values the selector addresses in input, in
// submission order. A single-valued selector yields at most one value. For a
// repeated selector, the list at the repeat position is enumerated from index
// zero until the first missing index; elements whose remaining path is
// missing or does not end in a scalar are skipped. Extract never fails: a
// missing or differently shaped path yields nil.
func Extract(s Selector, input Node) []string {
	var values []string
	collect(s, input, func(_ int, v string) {
		values = append(values, v)
	})
	return values
}

// collect walks input along s and calls yield with the enumeration index and
// value of every scalar it reaches. A single-valued selector reports index
// zero. It returns the number of indices enumerated at the repeat position,
// counting elements that were skipped.
func collect(s Selector, input Node, yield func(i int, v string)) int {
	if s.IsZero() {
		return 0
	}

	n := input
	for i, seg := range s.segments {
		next, ok := child(n, seg)
		if !ok {
			return 0
		}
		n = next
		if i+1 != s.repeat {
			continue
		}

		j := 0
		for ; ; j++ {
			elem, ok := element(n, j)
			if !ok {
				break
			}
			if v, ok := resolve(elem, s.segments[i+1:]); ok {
				yield(j, v)
			}
		}
		return j
	}

	v, ok := n.(Scalar)
	if !ok {
		return 0
	}
	yield(0, string(v))
	return 1
}

// resolve follows path from n and reports the scalar at its end.
func resolve(n Node, path []string) (string, bool) {
	for _, seg := range path {
		next, ok := child(n, seg)
		if !ok {
			return "", false
		}
		n = next
	}
	v, ok := n.(Scalar)
	return string(v), ok
}
