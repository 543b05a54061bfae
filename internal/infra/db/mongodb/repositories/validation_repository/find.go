package validation_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindValidationRepository struct {
	Db *mongo.Database
}

func NewFindValidationRepository(db *mongo.Database) *FindValidationRepository {
	return &FindValidationRepository{
		Db: db,
	}
}

func (f *FindValidationRepository) Find(ctx context.Context, typeId int, decisionId primitive.ObjectID) (*models.Validation, error) {
	collection := f.Db.Collection("validation")

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var validation models.Validation
	err := collection.FindOne(ctx, bson.M{"type_id": typeId, "doc_id": decisionId}).Decode(&validation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &validation, nil
}
