package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DecisionStatusApprove = "APPROVE"
	DecisionStatusRefuse  = "REFUSE"
	DecisionStatusSuspend = "SUSPEND"
)

type Decision struct {
	Id            primitive.ObjectID `bson:"_id" json:"id"`
	ApplicationId primitive.ObjectID `bson:"application_id" json:"applicationId"`
	PortfolioId   primitive.ObjectID `bson:"portfolio_id" json:"portfolioId"`
	Status        string             `bson:"status" json:"status"`
	IsApproved    bool               `bson:"is_approved" json:"isApproved"`
	IsStated      bool               `bson:"is_stated" json:"isStated"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsPositiveApproved reports an approving decision that has also been signed off.
func (d *Decision) IsPositiveApproved() bool {
	return d != nil && d.Status == DecisionStatusApprove && d.IsApproved
}

func (d *Decision) IsRefusal() bool {
	return d != nil && d.Status == DecisionStatusRefuse
}
