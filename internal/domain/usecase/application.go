package usecase

import (
	"context"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindApplicationByIdRepository interface {
	Find(ctx context.Context, applicationId primitive.ObjectID) (*models.Application, error)
}

type FindApplicationsByOperationHistoryInputRepository struct {
	OperationHistoryId primitive.ObjectID
	MaxDate            time.Time
	DocumentType       string
	ExpenseDirection   string
}

// FindApplicationsByOperationHistoryRepository returns the applications of one
// operation history dated on or before MaxDate, oldest first.
type FindApplicationsByOperationHistoryRepository interface {
	Find(ctx context.Context, input *FindApplicationsByOperationHistoryInputRepository) ([]models.Application, error)
}
