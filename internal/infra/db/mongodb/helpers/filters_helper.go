package helpers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildApplicationsFilter selects applications of one operation history whose
// acceptance date, or registration date when never accepted, is on or before maxDate.
func BuildApplicationsFilter(operationHistoryId primitive.ObjectID, documentType string, expenseDirection string, maxDate time.Time) bson.M {
	until := EndOfDay(maxDate)

	return bson.M{
		"operation_history_id": operationHistoryId,
		"document_type":        documentType,
		"expense_direction":    expenseDirection,
		"$or": []bson.M{
			{
				"acceptance_date": bson.M{"$lte": until},
			},
			{
				"acceptance_date": nil,
				"date":            bson.M{"$lte": until},
			},
		},
	}
}
