// ABOUTME: Forgiving number parsing for hand-edited CSV cells.
// ABOUTME: Reads the leading numeric prefix and falls back to a default.
package transfer

import (
	"math"
	"strconv"
	"strings"
)

// parseFloatOr reads the longest leading decimal number in s ("12.5kg" is
// 12.5). Anything unreadable, or zero, yields def.
func parseFloatOr(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	end := scanSign(s, 0)
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return def
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := scanSign(s, end+1)
		expEnd := exp
		for expEnd < len(s) && isDigit(s[expEnd]) {
			expEnd++
		}
		if expEnd > exp {
			end = expEnd
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil || v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return def
	}
	return v
}

// parseIntOr reads the leading integer in s ("3.7" is 3). Anything
// unreadable, or zero, yields def.
func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	end := scanSign(s, 0)
	start := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return def
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil || v == 0 {
		return def
	}
	return v
}

func scanSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
