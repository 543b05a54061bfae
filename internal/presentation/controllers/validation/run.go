package validation

import (
	"errors"
	"net/http"

	"github.com/anuntech/decision-backend/internal/domain/usecase"
	domainValidation "github.com/anuntech/decision-backend/internal/domain/validation"
	"github.com/anuntech/decision-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type RunValidationController struct {
	DecisionValidator        usecase.DecisionValidator
	SaveValidationRepository usecase.SaveValidationRepository
	Validate                 *validator.Validate
}

func NewRunValidationController(decisionValidator usecase.DecisionValidator, saveValidation usecase.SaveValidationRepository) *RunValidationController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RunValidationController{
		DecisionValidator:        decisionValidator,
		SaveValidationRepository: saveValidation,
		Validate:                 validate,
	}
}

func (c *RunValidationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	decisionId, errResp := helpers.GetDecisionIdByPath(r, c.Validate)
	if errResp != nil {
		return errResp
	}

	result, err := c.DecisionValidator.Validate(r.Req.Context(), decisionId)
	if errors.Is(err, domainValidation.ErrDecisionNotFound) ||
		errors.Is(err, domainValidation.ErrApplicationNotFound) ||
		errors.Is(err, domainValidation.ErrPortfolioNotFound) {
		return helpers.CreateErrorResponse(err.Error(), http.StatusNotFound)
	}
	if err != nil {
		log.Error().Err(err).Str("decisionId", decisionId.Hex()).Int("validationTypeId", c.DecisionValidator.ValidationTypeId()).Msg("error running validation")
		return helpers.CreateErrorResponse("an error occurred when running the validation", http.StatusInternalServerError)
	}

	saved, err := c.SaveValidationRepository.Save(r.Req.Context(), result)
	if err != nil {
		log.Error().Err(err).Str("decisionId", decisionId.Hex()).Msg("error saving validation")
		return helpers.CreateErrorResponse("an error occurred when saving the validation", http.StatusInternalServerError)
	}

	return helpers.CreateResponse(saved, http.StatusOK)
}
