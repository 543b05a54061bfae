package application_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/domain/usecase"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindApplicationsByOperationHistoryRepository struct {
	Db *mongo.Database
}

func NewFindApplicationsByOperationHistoryRepository(db *mongo.Database) *FindApplicationsByOperationHistoryRepository {
	return &FindApplicationsByOperationHistoryRepository{
		Db: db,
	}
}

func (f *FindApplicationsByOperationHistoryRepository) Find(ctx context.Context, input *usecase.FindApplicationsByOperationHistoryInputRepository) ([]models.Application, error) {
	collection := f.Db.Collection("application")

	filter := helpers.BuildApplicationsFilter(input.OperationHistoryId, input.DocumentType, input.ExpenseDirection, input.MaxDate)

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []models.Application
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, err
	}

	// never accepted applications have a null acceptance_date, which Mongo sorts first
	helpers.SortApplicationsByReferenceDate(applications)

	return applications, nil
}
