package router

import (
	"airline/config"
	"airline/internal/handlers/auth"
	"airline/internal/handlers/employee"
	"airline/internal/handlers/flight"
	"airline/internal/handlers/passenger"
	"airline/internal/handlers/reservation"
	"airline/internal/handlers/seat"
	"airline/internal/handlers/ticket"
	"airline/shared/failure"
	"airline/transport/http/middleware"
	"airline/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Flight      flight.Handler
	Seat        seat.Handler
	Passenger   passenger.Handler
	Employee    employee.Handler
	Reservation reservation.Handler
	Ticket      ticket.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Config         *config.Config
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func New(domainHandlers DomainHandlers, cfg *config.Config, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Config:         cfg,
		App:            app,
		AuthRole:       authRole,
	}
}

// SetupMiddlewares registers the request pipeline. Auth and RBAC sit on the root router so
// that route patterns resolve to their full path.
func (r *Router) SetupMiddlewares(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Use(r.App.Tracing)
	router.Use(r.AuthRole.APIKey)
	router.Use(r.App.RateLimit())
	router.Use(r.AuthRole.Auth)
	router.Use(r.AuthRole.RBAC)
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.WithError(w, failure.NotFound(fmt.Sprintf("No endpoint %s %s.", req.Method, req.URL.Path)))
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.WithError(w, failure.MethodNotAllowed(fmt.Sprintf("Request method '%s' is not supported", req.Method)))
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Flight.Router(routerGroup)
		r.DomainHandlers.Seat.Router(routerGroup)
		r.DomainHandlers.Passenger.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Ticket.Router(routerGroup)
	})
}
