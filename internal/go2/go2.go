// Package go2 collects the small generic helpers the layout phases reach
// for repeatedly (min/max over ordered scratch values, membership
// checks over small slices of vertices/edges). Adapted from the
// teacher's lib/go2.
package go2

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Abs[T constraints.Float | constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func Contains[T comparable](els []T, el T) bool {
	for _, e := range els {
		if e == el {
			return true
		}
	}
	return false
}

func Filter[T any](els []T, fn func(T) bool) []T {
	out := []T{}
	for _, el := range els {
		if fn(el) {
			out = append(out, el)
		}
	}
	return out
}
