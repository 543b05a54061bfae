package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DocumentTypeMZRK = "MZRK"

	ExpenseDirectionMonthlyPaymentHelp = "MONTHLY_PAYMENT_HELP"
)

type OrgUnit struct {
	Code string `bson:"code" json:"code"`
	Name string `bson:"name" json:"name"`
}

// FormattedCodeName renders the unit as "code name", dropping whichever part is empty.
func (o OrgUnit) FormattedCodeName() string {
	switch {
	case o.Code == "":
		return o.Name
	case o.Name == "":
		return o.Code
	}
	return o.Code + " " + o.Name
}

type Application struct {
	Id                 primitive.ObjectID `bson:"_id" json:"id"`
	OperationHistoryId primitive.ObjectID `bson:"operation_history_id" json:"operationHistoryId"`
	DocumentType       string             `bson:"document_type" json:"documentType"`
	ExpenseDirection   string             `bson:"expense_direction" json:"expenseDirection"`
	AcceptanceDate     *time.Time         `bson:"acceptance_date,omitempty" json:"acceptanceDate,omitempty"`
	Date               time.Time          `bson:"date" json:"date"`
	IncomingNumber     string             `bson:"incoming_number" json:"incomingNumber"`
	OrgUnit            OrgUnit            `bson:"org_unit" json:"orgUnit"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ReferenceDate is the acceptance date, or the registration date for applications
// that were never formally accepted.
func (a *Application) ReferenceDate() time.Time {
	if a.AcceptanceDate != nil {
		return *a.AcceptanceDate
	}
	return a.Date
}
