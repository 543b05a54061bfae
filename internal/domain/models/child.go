package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Child struct {
	Id                 primitive.ObjectID `bson:"_id" json:"id"`
	ApplicationId      primitive.ObjectID `bson:"application_id" json:"applicationId"`
	LastName           string             `bson:"last_name" json:"lastName"`
	FirstName          string             `bson:"first_name" json:"firstName"`
	Patronymic         string             `bson:"patronymic" json:"patronymic"`
	BirthDate          time.Time          `bson:"birth_date" json:"birthDate"`
	Snils              string             `bson:"snils" json:"snils"`
	IsConsideredInCalc *bool              `bson:"is_considered_in_calc,omitempty" json:"isConsideredInCalc,omitempty"`
	NotInCalcReason    *string            `bson:"not_in_calc_reason,omitempty" json:"notInCalcReason,omitempty"`
}

// CountsInCalc is true only for children explicitly considered in the payment
// calculation and carrying no exclusion reason.
func (c *Child) CountsInCalc() bool {
	return c.IsConsideredInCalc != nil && *c.IsConsideredInCalc && c.NotInCalcReason == nil
}

