package calculator

import (
	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/utils"
)

type MonthlyPaymentCalculator struct{}

func NewMonthlyPaymentCalculator() *MonthlyPaymentCalculator {
	return &MonthlyPaymentCalculator{}
}

// IsChildDoubled reports whether child is already paid for by another application,
// i.e. it appears among existing and was counted in that application's calculation.
// A matching well-formed SNILS is enough on its own; otherwise the full identity must match.
func (c *MonthlyPaymentCalculator) IsChildDoubled(child models.Child, existing []models.Child) bool {
	for _, e := range existing {
		if !e.CountsInCalc() {
			continue
		}

		if utils.SameSnils(child, e) || utils.IsSameChild(child, e) {
			return true
		}
	}

	return false
}
