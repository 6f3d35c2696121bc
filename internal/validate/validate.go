package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCountry  = regexp.MustCompile(`^[A-Z]{2}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCategory = regexp.MustCompile(`^[A-Za-z0-9 _&'-]{1,50}$`)
)

// Country validates and upper-cases a 2-letter shopper country code.
func Country(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reCountry.MatchString(s)
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Category validates a category filter value; "all" is always allowed.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return "all", true
	}
	return s, reCategory.MatchString(s)
}

// Qty parses a quantity, clamping to 1..50.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}
