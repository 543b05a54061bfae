package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuntech/decision-backend/internal/setup"
	"github.com/anuntech/decision-backend/internal/setup/config"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnvFile(".env")
	cfg := config.Load()
	config.ConfigureLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.SecretJWT == "" {
		log.Fatal().Msg("SECRET_JWT is required")
	}

	handler, closeConnections := setup.Server(cfg)

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server is running")
		err := sm.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("received terminate, graceful shutdown")

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sm.Shutdown(tc); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	closeConnections()
}
