package config

import (
	"net/http"

	"github.com/anuntech/decision-backend/internal/setup/middlewares"
	"github.com/anuntech/decision-backend/internal/setup/routes"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, workspaceDb *mongo.Database, redisClient *redis.Client, cfg *Config) {
	apiServer := http.NewServeMux()
	routes.ValidationRoutes(apiServer, &routes.Dependencies{
		Db:          db,
		WorkspaceDb: workspaceDb,
		Redis:       redisClient,
		SecretJWT:   cfg.SecretJWT,
		ReportTTL:   cfg.ReportTTL,
	})

	server.Handle("/api/", middlewares.RecoveryMiddleware(
		middlewares.CorsMiddleware(http.StripPrefix("/api", apiServer), cfg.AllowedOrigins),
	))
}
