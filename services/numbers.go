package services

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity reads the leading integer of raw. Missing, unparsable or
// values below 1 all become 1.
func ParseQuantity(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 1 {
		return 1
	}
	return n
}

// ParseNumber reads the leading decimal number of raw, or 0.
func ParseNumber(raw string) float64 {
	v, ok := parseLeadingFloat(raw)
	if !ok {
		return 0
	}
	return v
}

// ParseWholeNumber reads the leading integer of raw, or 0.
func ParseWholeNumber(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok {
		return 0
	}
	return n
}

// parseLeadingInt accepts an optional sign followed by digits and ignores
// whatever trails them ("3 runs" is 3, "2.7" is 2).
func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingFloat reads an optional sign, digits with at most one decimal
// point, and an optional exponent from the start of raw, ignoring whatever
// trails them. Overflow to infinity is rejected.
func parseLeadingFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	intDigits := scanDigits(s, end)
	end += intDigits
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracDigits = scanDigits(s, end+1)
		if intDigits > 0 || fracDigits > 0 {
			end += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if n := scanDigits(s, exp); n > 0 {
			end = exp + n
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func scanDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && s[from+n] >= '0' && s[from+n] <= '9' {
		n++
	}
	return n
}
