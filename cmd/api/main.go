package main

import (
	"os"

	"github.com/erenyalcin/campushare/internal/pkg/logger"
	"github.com/erenyalcin/campushare/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
