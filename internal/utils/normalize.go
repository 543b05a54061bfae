package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var yoReplacer = strings.NewReplacer("ё", "е", "Ё", "Е")

// Normalize prepares a personal-data value for comparison: NFC, lower case,
// single spaces, no surrounding blanks or invisible characters, and "ё" folded into "е".
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	s = cases.Lower(language.Russian).String(s)

	return yoReplacer.Replace(s)
}
