package auth

import (
	"airline/infras/otel"
	"airline/internal/domains/auth/model/dto"
	"airline/internal/domains/auth/service"
	"airline/shared/constant"
	"airline/shared/validator"
	"airline/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/passengers/login", handler.PassengerLogin)
		r.Post("/passengers/register", handler.PassengerRegister)
		r.Post("/employees/login", handler.EmployeeLogin)
		r.Post("/employees/register", handler.EmployeeRegister)
	})
}

// respond decodes the body into req, runs call and writes the auth payload.
// Sentinel outcomes are still a 200.
func respond[T any](handler *Handler, w http.ResponseWriter, r *http.Request, span string, req *T, call func(context.Context, T) (dto.Result, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+span)
	defer scope.End()

	if err := validator.Validate(r.Body, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := call(ctx, *req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", span).Msg("authentication failed")

		response.WithError(w, err)

		return
	}

	res := dto.AuthResponse{}
	res.FromResult(result)

	scope.SetAttribute("auth.outcome", int(result.Outcome))

	response.WithJSON(w, http.StatusOK, res)
}

// PassengerLogin handles passenger login
// @Summary Login a passenger
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/auth/passengers/login [post]
func (handler *Handler) PassengerLogin(w http.ResponseWriter, r *http.Request) {
	respond(handler, w, r, "PassengerLogin", &dto.LoginRequest{}, handler.service.PassengerLogin)
}

// PassengerRegister handles passenger registration and signs the new passenger in.
// @Summary Register a passenger
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PassengerRegisterRequest true "Register Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Router /api/auth/passengers/register [post]
func (handler *Handler) PassengerRegister(w http.ResponseWriter, r *http.Request) {
	respond(handler, w, r, "PassengerRegister", &dto.PassengerRegisterRequest{}, handler.service.PassengerRegister)
}

// EmployeeLogin handles employee login
// @Summary Login an employee
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/auth/employees/login [post]
func (handler *Handler) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	respond(handler, w, r, "EmployeeLogin", &dto.LoginRequest{}, handler.service.EmployeeLogin)
}

// EmployeeRegister handles employee registration and signs the new employee in.
// @Summary Register an employee
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.EmployeeRegisterRequest true "Register Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Router /api/auth/employees/register [post]
func (handler *Handler) EmployeeRegister(w http.ResponseWriter, r *http.Request) {
	respond(handler, w, r, "EmployeeRegister", &dto.EmployeeRegisterRequest{}, handler.service.EmployeeRegister)
}
