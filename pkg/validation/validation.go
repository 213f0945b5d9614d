package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxCityLength bounds the city name forwarded to the geocoder
const MaxCityLength = 200

// IsNotBlank checks if string is not empty after trimming
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCity reports whether a trimmed city name is non-empty and within MaxCityLength runes
func IsValidCity(city string) bool {
	trimmed, ok := TrimAndValidate(city)
	return ok && utf8.RuneCountInString(trimmed) <= MaxCityLength
}
