package main

import (
	"os"

	"github.com/tanish/hostelhub/internal/pkg/logger"
	"github.com/tanish/hostelhub/internal/server"
)

// @title HostelHub API
// @version 1.0
// @description Hostel management service: accounts, complaints, food requests and lost & found

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Role-scoped JWT token

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
