package validation_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SaveValidationRepository struct {
	Db *mongo.Database
}

func NewSaveValidationRepository(db *mongo.Database) *SaveValidationRepository {
	return &SaveValidationRepository{
		Db: db,
	}
}

// Save keeps one result per validation type and decision, replacing the previous run.
func (s *SaveValidationRepository) Save(ctx context.Context, validation *models.Validation) (*models.Validation, error) {
	collection := s.Db.Collection("validation")

	filter := bson.M{"type_id": validation.TypeId, "doc_id": validation.DocId}
	update := bson.M{
		"$set": bson.M{
			"result":            validation.Result,
			"error_description": validation.ErrorDescription,
			"checked_at":        validation.CheckedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	updateOptions := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var saved models.Validation
	if err := collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
