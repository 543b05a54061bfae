package decision_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindStatedDecisionRepository struct {
	Db *mongo.Database
}

func NewFindStatedDecisionRepository(db *mongo.Database) *FindStatedDecisionRepository {
	return &FindStatedDecisionRepository{
		Db: db,
	}
}

func (f *FindStatedDecisionRepository) FindStated(ctx context.Context, applicationId primitive.ObjectID) (*models.Decision, error) {
	collection := f.Db.Collection("decision")

	filter := bson.M{"application_id": applicationId, "is_stated": true}
	// a re-decided application keeps older stated rows until they are archived
	findOptions := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var decision models.Decision
	err := collection.FindOne(ctx, filter, findOptions).Decode(&decision)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &decision, nil
}
