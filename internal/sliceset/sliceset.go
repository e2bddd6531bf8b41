// Package sliceset treats slices as ordered sets: first occurrence wins.
package sliceset

// Union returns the distinct elements of a followed by those of b that are
// not already present. Neither input is modified.
func Union[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	seen := make(map[T]struct{}, len(a)+len(b))
	for _, s := range [2][]T{a, b} {
		for _, v := range s {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Unique drops repeated elements in place and returns the shortened slice.
func Unique[T comparable](s []T) []T {
	if len(s) < 2 {
		return s
	}
	seen := make(map[T]struct{}, len(s))
	n := 0
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		s[n] = v
		n++
	}
	// release references held by the tail
	clear(s[n:])
	return s[:n]
}

// Difference returns the distinct elements of a that do not occur in b.
func Difference[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(a)+len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}
	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := exclude[v]; ok {
			continue
		}
		exclude[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
