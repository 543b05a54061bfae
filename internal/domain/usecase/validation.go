package usecase

import (
	"context"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DecisionValidator interface {
	Validate(ctx context.Context, decisionId primitive.ObjectID) (*models.Validation, error)
	ValidationTypeId() int
}

type SaveValidationRepository interface {
	Save(ctx context.Context, validation *models.Validation) (*models.Validation, error)
}

type FindValidationRepository interface {
	Find(ctx context.Context, typeId int, decisionId primitive.ObjectID) (*models.Validation, error)
}

type ValidationReportStore interface {
	Save(ctx context.Context, key string, report []byte, expiration time.Duration) error
	Find(ctx context.Context, key string) ([]byte, error)
}
