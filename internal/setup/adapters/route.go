package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/rs/zerolog/log"
)

func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()

		if _, err := io.Copy(w, response.Body); err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("error writing response")
		}
	})
}
