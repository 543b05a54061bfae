package calculator

import (
	"testing"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestMonthlyPaymentCalculator_IsChildDoubled(t *testing.T) {
	birth := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	child := models.Child{
		LastName:   "Петров",
		FirstName:  "Иван",
		Patronymic: "Сергеевич",
		BirthDate:  birth,
		Snils:      "11223344595",
	}
	counted := child
	counted.IsConsideredInCalc = boolPtr(true)

	calc := NewMonthlyPaymentCalculator()

	t.Run("counted twin is doubled", func(t *testing.T) {
		assert.True(t, calc.IsChildDoubled(child, []models.Child{counted}))
	})

	t.Run("same snils with different spelling is doubled", func(t *testing.T) {
		respelled := counted
		respelled.LastName = "Петрова"
		assert.True(t, calc.IsChildDoubled(child, []models.Child{respelled}))
	})

	t.Run("not considered in calculation", func(t *testing.T) {
		excluded := child
		excluded.IsConsideredInCalc = boolPtr(false)
		assert.False(t, calc.IsChildDoubled(child, []models.Child{excluded}))
	})

	t.Run("considered but with exclusion reason", func(t *testing.T) {
		excluded := counted
		excluded.NotInCalcReason = strPtr("OVER_AGE")
		assert.False(t, calc.IsChildDoubled(child, []models.Child{excluded}))
	})

	t.Run("unknown calculation flag", func(t *testing.T) {
		assert.False(t, calc.IsChildDoubled(child, []models.Child{child}))
	})

	t.Run("other child", func(t *testing.T) {
		sibling := models.Child{
			LastName:           "Петрова",
			FirstName:          "Мария",
			Patronymic:         "Сергеевна",
			BirthDate:          birth.AddDate(2, 0, 0),
			Snils:              "99887766500",
			IsConsideredInCalc: boolPtr(true),
		}
		assert.False(t, calc.IsChildDoubled(child, []models.Child{sibling}))
	})

	t.Run("placeholder snils does not match a different child", func(t *testing.T) {
		applicant := models.Child{
			LastName:   "Смирнов",
			FirstName:  "Артём",
			Patronymic: "Олегович",
			BirthDate:  birth,
			Snils:      "нет",
		}
		sister := models.Child{
			LastName:           "Смирнова",
			FirstName:          "Ольга",
			Patronymic:         "Олеговна",
			BirthDate:          birth.AddDate(3, 0, 0),
			Snils:              "нет",
			IsConsideredInCalc: boolPtr(true),
		}
		assert.False(t, calc.IsChildDoubled(applicant, []models.Child{sister}))
	})

	t.Run("placeholder snils falls back to full identity", func(t *testing.T) {
		withoutSnils := child
		withoutSnils.Snils = "-"
		twin := counted
		twin.Snils = "-"
		assert.True(t, calc.IsChildDoubled(withoutSnils, []models.Child{twin}))
	})

	t.Run("no existing children", func(t *testing.T) {
		assert.False(t, calc.IsChildDoubled(child, nil))
	})
}
