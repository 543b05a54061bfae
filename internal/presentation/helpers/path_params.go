package helpers

import (
	"net/http"

	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DecisionPathParams struct {
	DecisionId string `json:"decisionId" validate:"required,mongodb"`
}

func GetDecisionIdByPath(r presentationProtocols.HttpRequest, validate *validator.Validate) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	params := &DecisionPathParams{
		DecisionId: r.Req.PathValue("decisionId"),
	}

	if err := validate.Struct(params); err != nil {
		return primitive.NilObjectID, CreateErrorResponse(GetErrorMessages(validate, err), http.StatusBadRequest)
	}

	decisionId, err := primitive.ObjectIDFromHex(params.DecisionId)
	if err != nil {
		return primitive.NilObjectID, CreateErrorResponse("invalid decision ID format", http.StatusBadRequest)
	}

	return decisionId, nil
}
