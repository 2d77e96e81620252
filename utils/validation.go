// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// phonePattern accepts an optional + prefix followed by 2-15 digits, the
// first of which must be nonzero (E.164-ish).
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)

	return phonePattern.MatchString(cleaned)
}
