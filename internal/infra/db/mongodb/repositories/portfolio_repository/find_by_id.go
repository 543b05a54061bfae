package portfolio_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindPortfolioByIdRepository struct {
	Db *mongo.Database
}

func NewFindPortfolioByIdRepository(db *mongo.Database) *FindPortfolioByIdRepository {
	return &FindPortfolioByIdRepository{
		Db: db,
	}
}

func (f *FindPortfolioByIdRepository) Find(ctx context.Context, portfolioId primitive.ObjectID) (*models.Portfolio, error) {
	collection := f.Db.Collection("portfolio")

	ctx, cancel := helpers.WithTimeout(ctx)
	defer cancel()

	var portfolio models.Portfolio
	err := collection.FindOne(ctx, bson.M{"_id": portfolioId}).Decode(&portfolio)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &portfolio, nil
}
