package main

import (
	"os"

	"github.com/skillsynergy/api/internal/pkg/logger"
	"github.com/skillsynergy/api/internal/server"
)

// @title SkillSynergy API
// @version 1.0
// @description Career guidance backend for students: skill assessments, roadmaps, jobs, mentors and community groups

// @host localhost:8080
// @BasePath /api
// @schemes http

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
