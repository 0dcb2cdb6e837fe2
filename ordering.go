package ordmap

import "golang.org/x/exp/constraints"

// Compare is a three-way comparison over keys. It returns a negative number
// if a sorts before b, zero if they are equal, and a positive number if a
// sorts after b. A Compare must define a total order.
type Compare[K any] func(a, b K) int

// CaseFold returns a comparator that orders strings byte-by-byte after
// folding lower-case ASCII letters to upper case. Upper and lower case
// letters are therefore equivalent, and the empty string sorts before
// everything else.
func CaseFold() Compare[string] {
	return func(a, b string) int {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		for i := 0; i < n; i++ {
			ca, cb := foldByte(a[i]), foldByte(b[i])
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		}
		switch {
		case len(a) < len(b):
			return -1
		case len(a) > len(b):
			return 1
		}
		return 0
	}
}

func foldByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Signed returns a comparator over any signed integer type. The full value
// range is supported; the comparison itself cannot overflow.
func Signed[K constraints.Signed]() Compare[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Ordered returns a comparator over any type with a built-in order.
func Ordered[K constraints.Ordered]() Compare[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}
