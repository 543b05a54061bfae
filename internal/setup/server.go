package setup

import (
	"net/http"

	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/decision-backend/internal/setup/config"
)

// Server wires the routes and returns the handler with a func that closes its connections.
func Server(cfg *config.Config) (*http.ServeMux, func()) {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(cfg.MongoURI, cfg.MongoDatabase)
	workspaceDb := helpers.MongoHelper(cfg.MongoURI, cfg.WorkspaceMongoDatabase)
	redisClient := helpers.RedisHelper(cfg.RedisURL)

	config.SetupRoutes(mux, db, workspaceDb, redisClient, cfg)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux, func() {
		helpers.DisconnectRedis(redisClient)
		helpers.DisconnectMongo(db)
		helpers.DisconnectMongo(workspaceDb)
	}
}
