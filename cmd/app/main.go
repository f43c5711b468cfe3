package main

import (
	"airline/config"
	"airline/di"
	"airline/helper"
	"airline/shared/logger"

	"github.com/rs/zerolog/log"

	_ "airline/docs"
)

// @title Airline Reservation API
// @version 1.0
// @description Flights, seats, passengers, employees, reservations and tickets.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
