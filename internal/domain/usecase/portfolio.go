package usecase

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindPortfolioByIdRepository interface {
	Find(ctx context.Context, portfolioId primitive.ObjectID) (*models.Portfolio, error)
}
