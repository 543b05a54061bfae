package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/rs/zerolog/log"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	data, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("error encoding response body")
		data = []byte(`{"error":"error encoding response"}`)
		statusCode = http.StatusInternalServerError
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: statusCode,
	}
}

func CreateErrorResponse(message string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: message,
	}, statusCode)
}
