package usecase

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindDecisionByIdRepository interface {
	Find(ctx context.Context, decisionId primitive.ObjectID) (*models.Decision, error)
}

// FindStatedDecisionByApplicationIdRepository returns nil, nil when the
// application has no decision in force.
type FindStatedDecisionByApplicationIdRepository interface {
	FindStated(ctx context.Context, applicationId primitive.ObjectID) (*models.Decision, error)
}
