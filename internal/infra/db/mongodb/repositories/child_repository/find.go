package child_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindChildrenByApplicationIdRepository struct {
	Db *mongo.Database
}

func NewFindChildrenByApplicationIdRepository(db *mongo.Database) *FindChildrenByApplicationIdRepository {
	return &FindChildrenByApplicationIdRepository{
		Db: db,
	}
}

func (f *FindChildrenByApplicationIdRepository) Find(ctx context.Context, applicationId primitive.ObjectID) ([]models.Child, error) {
	collection := f.Db.Collection("child")

	findOptions := options.Find().SetSort(bson.D{{Key: "birth_date", Value: 1}})

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"application_id": applicationId}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var children []models.Child
	if err = cursor.All(ctx, &children); err != nil {
		return nil, err
	}

	return children, nil
}
