package helpers

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Timeout = 10 * time.Second

func MongoHelper(URI string, databaseName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to MongoDB")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error pinging MongoDB")
	}

	log.Info().Str("database", databaseName).Msg("MongoDB connection established")

	return client.Database(databaseName)
}

func DisconnectMongo(db *mongo.Database) {
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error().Err(err).Str("database", db.Name()).Msg("error disconnecting from MongoDB")
		return
	}
	log.Info().Str("database", db.Name()).Msg("disconnected from MongoDB")
}

// WithTimeout bounds a repository call by the request context and the driver timeout.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, Timeout)
}
