package main

import (
	"os"

	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
	"github.com/ardhiancalwa/Schola/internal/server"
)

// @title Schola API
// @version 1.0
// @description Backend for the Schola school-management dashboard: class analytics, attendance, reports and AI material summarization

// @contact.name API Support
// @contact.email support@schola.id

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
