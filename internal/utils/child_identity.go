package utils

import "github.com/anuntech/decision-backend/internal/domain/models"

// IsSameChild compares two child records by full name, birth date and SNILS.
func IsSameChild(a, b models.Child) bool {
	return Normalize(a.LastName) == Normalize(b.LastName) &&
		Normalize(a.FirstName) == Normalize(b.FirstName) &&
		Normalize(a.Patronymic) == Normalize(b.Patronymic) &&
		SameDay(a.BirthDate, b.BirthDate) &&
		Normalize(SnilsString(a.Snils)) == Normalize(SnilsString(b.Snils))
}

// SameSnils is true only when both records carry a well-formed insurance number
// and the numbers match. Placeholders such as "нет" or "-" never match.
func SameSnils(a, b models.Child) bool {
	as, ok := CanonicalSnils(a.Snils)
	if !ok {
		return false
	}
	bs, ok := CanonicalSnils(b.Snils)
	return ok && as == bs
}
