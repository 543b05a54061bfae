package routes

import (
	"net/http"
	"time"

	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/workspace_repository/member_repository"
	"github.com/anuntech/decision-backend/internal/setup/adapters"
	"github.com/anuntech/decision-backend/internal/setup/factory"
	"github.com/anuntech/decision-backend/internal/setup/middlewares"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependencies struct {
	Db          *mongo.Database
	WorkspaceDb *mongo.Database
	Redis       *redis.Client
	SecretJWT   string
	ReportTTL   time.Duration
}

func ValidationRoutes(server *http.ServeMux, deps *Dependencies) {
	findMember := member_repository.NewFindMemberByIdRepository(deps.WorkspaceDb)

	protect := func(handler http.Handler) http.Handler {
		return middlewares.VerifyAccessToken(
			middlewares.IsAllowed(handler, findMember),
			deps.SecretJWT,
		)
	}

	server.Handle("POST /decision/{decisionId}/validation/previous-monthly-payment", protect(
		adapters.AdaptRoute(factory.MakeRunValidationController(deps.Db)),
	))

	server.Handle("GET /decision/{decisionId}/validation/report", protect(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetValidationReportController(deps.Db, deps.Redis, deps.ReportTTL)),
		),
	))

	server.Handle("GET /decision/{decisionId}/validation/{typeId}", protect(
		adapters.AdaptRoute(factory.MakeGetValidationController(deps.Db)),
	))
}
