package usecase

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindChildrenByApplicationIdRepository interface {
	Find(ctx context.Context, applicationId primitive.ObjectID) ([]models.Child, error)
}

type ChildDoubledCalculator interface {
	IsChildDoubled(child models.Child, existing []models.Child) bool
}
