package validation

import (
	"fmt"
	"net/http"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/domain/usecase"
	"github.com/anuntech/decision-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type GetValidationReportController struct {
	FindValidationRepository      usecase.FindValidationRepository
	FindDecisionByIdRepository    usecase.FindDecisionByIdRepository
	FindApplicationByIdRepository usecase.FindApplicationByIdRepository
	FindChildrenRepository        usecase.FindChildrenByApplicationIdRepository
	ReportStore                   usecase.ValidationReportStore
	ReportExpiration              time.Duration
	Validate                      *validator.Validate
}

func NewGetValidationReportController(
	findValidation usecase.FindValidationRepository,
	findDecisionById usecase.FindDecisionByIdRepository,
	findApplicationById usecase.FindApplicationByIdRepository,
	findChildren usecase.FindChildrenByApplicationIdRepository,
	reportStore usecase.ValidationReportStore,
	reportExpiration time.Duration,
) *GetValidationReportController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetValidationReportController{
		FindValidationRepository:      findValidation,
		FindDecisionByIdRepository:    findDecisionById,
		FindApplicationByIdRepository: findApplicationById,
		FindChildrenRepository:        findChildren,
		ReportStore:                   reportStore,
		ReportExpiration:              reportExpiration,
		Validate:                      validate,
	}
}

type GetValidationReportResponse struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"content"`
}

func (c *GetValidationReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ctx := r.Req.Context()

	decisionId, errResp := helpers.GetDecisionIdByPath(r, c.Validate)
	if errResp != nil {
		return errResp
	}

	validation, err := c.FindValidationRepository.Find(ctx, models.ValidationTypeAnotherMonthlyPayment, decisionId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding the validation", http.StatusInternalServerError)
	}
	if validation == nil {
		return helpers.CreateErrorResponse("validation not found, run it first", http.StatusNotFound)
	}

	fileName := fmt.Sprintf("validation-%s-%d.xlsx", decisionId.Hex(), validation.CheckedAt.Unix())
	key := "validation-report:" + fileName

	report, err := c.ReportStore.Find(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error reading cached report, rebuilding")
	}
	if report != nil {
		return helpers.CreateResponse(&GetValidationReportResponse{FileName: fileName, Content: report}, http.StatusOK)
	}

	decision, err := c.FindDecisionByIdRepository.Find(ctx, decisionId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding the decision", http.StatusInternalServerError)
	}
	if decision == nil {
		return helpers.CreateErrorResponse("decision not found", http.StatusNotFound)
	}

	application, err := c.FindApplicationByIdRepository.Find(ctx, decision.ApplicationId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding the application", http.StatusInternalServerError)
	}
	if application == nil {
		return helpers.CreateErrorResponse("application not found", http.StatusNotFound)
	}

	children, err := c.FindChildrenRepository.Find(ctx, application.Id)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding the children", http.StatusInternalServerError)
	}

	report, err = helpers.BuildValidationReport(validation, application, children)
	if err != nil {
		log.Error().Err(err).Str("decisionId", decisionId.Hex()).Msg("error building validation report")
		return helpers.CreateErrorResponse("an error occurred when building the report", http.StatusInternalServerError)
	}

	if err := c.ReportStore.Save(ctx, key, report, c.ReportExpiration); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error caching report")
	}

	return helpers.CreateResponse(&GetValidationReportResponse{FileName: fileName, Content: report}, http.StatusOK)
}
