// Package csvutil parses records of signed decimal values in
// comma-separated value format. One record is consumed per call, so
// callers can interleave parsing with their own per-record handling.
// LF, CR, LF+CR and CR+LF record endings are all accepted.
package csvutil

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt64s parses one record of integer fields from s into dst. Fields
// parse like C strtol with base detection: leading whitespace then the
// longest valid decimal, hex (0x) or octal (leading 0) prefix; a field with
// no digits yields 0, and out-of-range values saturate.
//
// It returns the number of fields in the record (which may exceed len(dst);
// the excess is counted but not stored), the unconsumed remainder of s, and
// whether the record was terminated by a line ending. A record ending at
// end-of-input reports more == false.
func ParseInt64s(s string, dst []int64) (fields int, rest string, more bool) {
	return parseRecord(s, len(dst), func(i int, field string) {
		dst[i] = parseLong(field)
	})
}

// ParseInt32s is like ParseInt64s but clamps each value to the int32 range.
func ParseInt32s(s string, dst []int32) (fields int, rest string, more bool) {
	return parseRecord(s, len(dst), func(i int, field string) {
		v := parseLong(field)
		if v > math.MaxInt32 {
			v = math.MaxInt32
		} else if v < math.MinInt32 {
			v = math.MinInt32
		}
		dst[i] = int32(v)
	})
}

// ParseFloat64s is like ParseInt64s for floating-point fields, parsed like
// C strtod (longest valid prefix, 0 on no digits).
func ParseFloat64s(s string, dst []float64) (fields int, rest string, more bool) {
	return parseRecord(s, len(dst), func(i int, field string) {
		dst[i] = parseDouble(field)
	})
}

func parseRecord(s string, room int, store func(i int, field string)) (int, string, bool) {
	record, rest, more := splitRecord(s)

	// An empty record is a special case: it has no fields at all rather
	// than a single field of value 0.
	if record == "" {
		return 0, rest, more
	}

	fields := 0
	start := 0
	// The <= comparison makes a trailing comma yield a final empty field.
	for start <= len(record) {
		end := len(record)
		if i := strings.IndexByte(record[start:], ','); i >= 0 {
			end = start + i
		}
		if fields < room {
			store(fields, record[start:end])
		}
		fields++
		start = end + 1
	}
	return fields, rest, more
}

// splitRecord cuts s at the first LF or CR. LF+CR and CR+LF are consumed
// as a single ending; checking the pairing (rather than just the next
// byte) keeps a blank following line with the opposite convention intact.
func splitRecord(s string) (record, rest string, more bool) {
	lf := strings.IndexByte(s, '\n')
	cr := strings.IndexByte(s, '\r')

	end := cr
	if lf >= 0 && (cr < 0 || lf < cr) {
		end = lf
	}
	if end < 0 {
		return s, "", false
	}

	next := end + 1
	if next < len(s) {
		c0, c1 := s[end], s[next]
		if (c0 == '\n' && c1 == '\r') || (c0 == '\r' && c1 == '\n') {
			next++
		}
	}
	return s[:end], s[next:], true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// parseLong reads the longest valid integer prefix of s, like strtol with
// base 0: "0x" selects hex, a leading 0 selects octal. No digits yields 0;
// out-of-range values saturate at the int64 bounds.
func parseLong(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	if i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') &&
		digitVal(s[i+2]) >= 0 && digitVal(s[i+2]) < 16 {
		base = 16
		i += 2
	} else if i < len(s) && s[i] == '0' {
		base = 8
	}

	var mag uint64
	var overflow bool
	seen := false
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 || d >= base {
			break
		}
		seen = true
		if mag > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		mag = mag*uint64(base) + uint64(d)
	}
	if !seen {
		return 0
	}

	if neg {
		if overflow || mag > 1<<63 {
			return math.MinInt64
		}
		return -int64(mag)
	}
	if overflow || mag > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(mag)
}

// parseDouble reads the longest valid floating-point prefix of s, like
// strtod. No digits yields 0.
func parseDouble(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			end = j
		}
	}

	// Out-of-range magnitudes come back as ±Inf alongside the range
	// error, which matches strtod's HUGE_VAL behaviour.
	f, _ := strconv.ParseFloat(s[start:end], 64)
	return f
}
