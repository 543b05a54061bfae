package helpers

import (
	"sort"

	"github.com/anuntech/decision-backend/internal/domain/models"
)

// SortApplicationsByReferenceDate orders applications oldest first by acceptance date,
// falling back to the registration date for applications never accepted.
func SortApplicationsByReferenceDate(applications []models.Application) {
	sort.SliceStable(applications, func(i, j int) bool {
		ri, rj := applications[i].ReferenceDate(), applications[j].ReferenceDate()
		if !ri.Equal(rj) {
			return ri.Before(rj)
		}
		return applications[i].Date.Before(applications[j].Date)
	})
}
