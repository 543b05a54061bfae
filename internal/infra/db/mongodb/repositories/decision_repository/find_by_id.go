package decision_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindDecisionByIdRepository struct {
	Db *mongo.Database
}

func NewFindDecisionByIdRepository(db *mongo.Database) *FindDecisionByIdRepository {
	return &FindDecisionByIdRepository{
		Db: db,
	}
}

func (f *FindDecisionByIdRepository) Find(ctx context.Context, decisionId primitive.ObjectID) (*models.Decision, error) {
	collection := f.Db.Collection("decision")

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var decision models.Decision
	err := collection.FindOne(ctx, bson.M{"_id": decisionId}).Decode(&decision)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &decision, nil
}
