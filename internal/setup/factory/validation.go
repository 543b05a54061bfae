package factory

import (
	"time"

	"github.com/anuntech/decision-backend/internal/domain/calculator"
	"github.com/anuntech/decision-backend/internal/domain/validation"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/application_repository"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/child_repository"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/decision_repository"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/portfolio_repository"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/repositories/validation_repository"
	controllers "github.com/anuntech/decision-backend/internal/presentation/controllers/validation"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakePreviousMonthlyPaymentAbsentValidator(db *mongo.Database) *validation.PreviousMonthlyPaymentAbsentValidator {
	return validation.NewPreviousMonthlyPaymentAbsentValidator(
		decision_repository.NewFindDecisionByIdRepository(db),
		decision_repository.NewFindStatedDecisionRepository(db),
		application_repository.NewFindApplicationByIdRepository(db),
		application_repository.NewFindApplicationsByOperationHistoryRepository(db),
		portfolio_repository.NewFindPortfolioByIdRepository(db),
		child_repository.NewFindChildrenByApplicationIdRepository(db),
		calculator.NewMonthlyPaymentCalculator(),
	)
}

func MakeRunValidationController(db *mongo.Database) *controllers.RunValidationController {
	return controllers.NewRunValidationController(
		MakePreviousMonthlyPaymentAbsentValidator(db),
		validation_repository.NewSaveValidationRepository(db),
	)
}

func MakeGetValidationController(db *mongo.Database) *controllers.GetValidationController {
	return controllers.NewGetValidationController(validation_repository.NewFindValidationRepository(db))
}

func MakeGetValidationReportController(db *mongo.Database, redisClient *redis.Client, reportTTL time.Duration) *controllers.GetValidationReportController {
	return controllers.NewGetValidationReportController(
		validation_repository.NewFindValidationRepository(db),
		decision_repository.NewFindDecisionByIdRepository(db),
		application_repository.NewFindApplicationByIdRepository(db),
		child_repository.NewFindChildrenByApplicationIdRepository(db),
		redis_repository.NewReportRedisRepository(redisClient),
		reportTTL,
	)
}
