package utils

import (
	"fmt"
	"strings"
)

const snilsDigits = 11

// CanonicalSnils renders an insurance number as "XXX-XXX-XXX YY". It reports false
// unless the value holds exactly eleven ASCII digits separated only by spaces or hyphens.
func CanonicalSnils(snils string) (string, bool) {
	digits := make([]byte, 0, snilsDigits)
	for _, r := range snils {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, byte(r))
		case r == ' ' || r == '-':
		default:
			return "", false
		}
	}

	if len(digits) != snilsDigits {
		return "", false
	}

	return fmt.Sprintf("%s-%s-%s %s", digits[0:3], digits[3:6], digits[6:9], digits[9:11]), true
}

// SnilsString is CanonicalSnils for well-formed numbers; anything else is returned
// trimmed and otherwise untouched.
func SnilsString(snils string) string {
	if canonical, ok := CanonicalSnils(snils); ok {
		return canonical
	}
	return strings.TrimSpace(snils)
}
