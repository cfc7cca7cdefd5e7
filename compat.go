package locale

import (
	"strconv"
	"strings"
)

// The _l function family of the C runtime exists purely for interface
// compatibility: each accepts a locale handle and ignores it, delegating
// to the locale-agnostic equivalent. Handles are inert pass-through tokens
// here and are never inspected, so callers may pass any value, including
// Global or nil.

// CompareFold is the strcasecmp_l shape: case-insensitive comparison
// reporting -1, 0 or +1.
func CompareFold(s1, s2 string, _ *Locale) int {
	return strings.Compare(strings.ToLower(s1), strings.ToLower(s2))
}

// Compare is the strcoll_l shape. Collation order in the supported
// personalities is plain byte order.
func Compare(s1, s2 string, _ *Locale) int {
	return strings.Compare(s1, s2)
}

// Transform is the strxfrm_l shape. Under byte-order collation a string
// transforms to itself.
func Transform(s string, _ *Locale) string {
	return s
}

// ParseFloat is the strtod_l / strtof_l shape.
func ParseFloat(s string, bitSize int, _ *Locale) (float64, error) {
	return strconv.ParseFloat(s, bitSize)
}

// ParseInt is the strtol_l / strtoll_l shape.
func ParseInt(s string, base, bitSize int, _ *Locale) (int64, error) {
	return strconv.ParseInt(s, base, bitSize)
}

// ParseUint is the strtoul_l / strtoull_l shape.
func ParseUint(s string, base, bitSize int, _ *Locale) (uint64, error) {
	return strconv.ParseUint(s, base, bitSize)
}
