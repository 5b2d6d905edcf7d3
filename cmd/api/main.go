package main

import (
	"os"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/logger"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/server"
)

// @title Smart Classroom API
// @version 1.0
// @description Classroom management service maintaining cross-collection references between teachers, students, classrooms and quizzes

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
