package extensions

import "strings"

// Number covers the numeric types the generic helpers operate on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// FilterFirstPtr return the first pointer that satisfies the predicate
func FilterFirstPtr[T any](elements []*T, predicate func(*T) bool) (result *T) {
	for _, element := range elements {
		if predicate(element) {
			return element
		}
	}
	return
}

// AreEqual is a simple case invariant string comparason
func AreEqual(s, c string) bool {
	return strings.EqualFold(s, c)
}

func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Sum[T Number](inp []T) (res T) {
	for _, v := range inp {
		res += v
	}
	return
}
