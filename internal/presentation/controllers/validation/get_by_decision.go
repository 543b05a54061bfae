package validation

import (
	"net/http"
	"strconv"

	"github.com/anuntech/decision-backend/internal/domain/usecase"
	"github.com/anuntech/decision-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type GetValidationController struct {
	FindValidationRepository usecase.FindValidationRepository
	Validate                 *validator.Validate
}

func NewGetValidationController(findValidation usecase.FindValidationRepository) *GetValidationController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetValidationController{
		FindValidationRepository: findValidation,
		Validate:                 validate,
	}
}

type getValidationParams struct {
	TypeId int `validate:"required,min=1"`
}

func (c *GetValidationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	decisionId, errResp := helpers.GetDecisionIdByPath(r, c.Validate)
	if errResp != nil {
		return errResp
	}

	typeId, err := strconv.Atoi(r.Req.PathValue("typeId"))
	if err != nil {
		return helpers.CreateErrorResponse("invalid validation type ID format", http.StatusBadRequest)
	}

	params := &getValidationParams{TypeId: typeId}
	if err := c.Validate.Struct(params); err != nil {
		return helpers.CreateErrorResponse(helpers.GetErrorMessages(c.Validate, err), http.StatusBadRequest)
	}

	validation, err := c.FindValidationRepository.Find(r.Req.Context(), params.TypeId, decisionId)
	if err != nil {
		return helpers.CreateErrorResponse("an error occurred when finding the validation: "+err.Error(), http.StatusInternalServerError)
	}

	if validation == nil {
		return helpers.CreateErrorResponse("validation not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(validation, http.StatusOK)
}
