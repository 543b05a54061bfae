package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ValidationResultSuccess = "SUCCESS"
	ValidationResultError   = "ERROR"
)

const ValidationTypeAnotherMonthlyPayment = 47

type Validation struct {
	Id               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TypeId           int                `bson:"type_id" json:"typeId"`
	DocId            primitive.ObjectID `bson:"doc_id" json:"docId"`
	Result           string             `bson:"result" json:"result"`
	ErrorDescription *string            `bson:"error_description,omitempty" json:"errorDescription,omitempty"`
	CheckedAt        time.Time          `bson:"checked_at" json:"checkedAt"`
}

func NewValidation(typeId int, docId primitive.ObjectID, result string, errorDescription *string) *Validation {
	return &Validation{
		TypeId:           typeId,
		DocId:            docId,
		Result:           result,
		ErrorDescription: errorDescription,
		CheckedAt:        time.Now(),
	}
}
