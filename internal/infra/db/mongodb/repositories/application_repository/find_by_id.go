package application_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindApplicationByIdRepository struct {
	Db *mongo.Database
}

func NewFindApplicationByIdRepository(db *mongo.Database) *FindApplicationByIdRepository {
	return &FindApplicationByIdRepository{
		Db: db,
	}
}

func (f *FindApplicationByIdRepository) Find(ctx context.Context, applicationId primitive.ObjectID) (*models.Application, error) {
	collection := f.Db.Collection("application")

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var application models.Application
	err := collection.FindOne(ctx, bson.M{"_id": applicationId}).Decode(&application)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &application, nil
}
