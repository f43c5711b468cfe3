//go:build wireinject
// +build wireinject

package di

import (
	"airline/config"
	"airline/infras/jwt"
	"airline/infras/kafka"
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/infras/redis"
	"airline/permissions"
	"airline/shared/cache"
	"airline/shared/password"
	"airline/shared/uow"
	"airline/transport/http"
	"airline/transport/http/middleware"
	"airline/transport/http/router"

	"github.com/google/wire"

	authService "airline/internal/domains/auth/service"
	employeeRepository "airline/internal/domains/employee/repository"
	employeeService "airline/internal/domains/employee/service"
	flightRepository "airline/internal/domains/flight/repository"
	flightService "airline/internal/domains/flight/service"
	passengerRepository "airline/internal/domains/passenger/repository"
	passengerService "airline/internal/domains/passenger/service"
	reservationRepository "airline/internal/domains/reservation/repository"
	reservationService "airline/internal/domains/reservation/service"
	seatRepository "airline/internal/domains/seat/repository"
	seatService "airline/internal/domains/seat/service"
	ticketRepository "airline/internal/domains/ticket/repository"
	ticketService "airline/internal/domains/ticket/service"

	authHandler "airline/internal/handlers/auth"
	employeeHandler "airline/internal/handlers/employee"
	flightHandler "airline/internal/handlers/flight"
	passengerHandler "airline/internal/handlers/passenger"
	reservationHandler "airline/internal/handlers/reservation"
	seatHandler "airline/internal/handlers/seat"
	ticketHandler "airline/internal/handlers/ticket"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	password.New,
	uow.New,
)

var repositories = wire.NewSet(
	flightRepository.New,
	seatRepository.New,
	passengerRepository.New,
	employeeRepository.New,
	reservationRepository.New,
	ticketRepository.New,
)

var services = wire.NewSet(
	authService.New,
	flightService.New,
	seatService.New,
	passengerService.New,
	employeeService.New,
	reservationService.New,
	ticketService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	flightHandler.New,
	seatHandler.New,
	passengerHandler.New,
	employeeHandler.New,
	reservationHandler.New,
	ticketHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
