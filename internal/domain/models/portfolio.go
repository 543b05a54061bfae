package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Portfolio struct {
	Id                 primitive.ObjectID `bson:"_id" json:"id"`
	OperationHistoryId primitive.ObjectID `bson:"operation_history_id" json:"operationHistoryId"`
}
