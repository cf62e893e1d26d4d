package main

import (
	"os"

	"github.com/profinsights/backend/internal/pkg/logger"
	"github.com/profinsights/backend/internal/server"
)

// @title ProfInsights API
// @version 1.0
// @description REST API for the ProfInsights professor review platform

// @contact.name API Support
// @contact.email support@profinsights.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
