package passenger

import (
	"airline/infras/otel"
	"airline/internal/domains/passenger/model/dto"
	"airline/internal/domains/passenger/service"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/principal"
	"airline/shared/validator"
	"airline/transport/http/request"
	"airline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Passenger
	otel    otel.Otel
}

func New(service service.Passenger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/passengers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPassengers)
		routerGroup.Get("/searchByName", handler.SearchByName)
		routerGroup.Get("/search", handler.SearchPassenger)
		routerGroup.Get("/{id}", handler.GetPassengerByID)
		routerGroup.Post("/", handler.CreatePassenger)
		routerGroup.Put("/", handler.UpdatePassenger)
		routerGroup.Delete("/{id}", handler.DeletePassenger)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetPassengers lists passengers page by page.
// @Summary Get all passengers
// @Tags Passenger
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPassengersResponse]
// @Failure 403 {object} response.Error
// @Router /api/passengers [get]
// @Security BearerAuth
func (handler *Handler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPassengers")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	passengers, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get passengers")

		return
	}

	response.WithJSON(w, http.StatusOK, passengers)
}

// GetPassengerByID retrieves a passenger. Passengers may only read themselves.
// @Summary Get a passenger by ID
// @Tags Passenger
// @Produce json
// @Param id path string true "Passenger ID"
// @Success 200 {object} response.Data[dto.PassengerResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/passengers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPassengerByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid passenger id")

		return
	}

	if err := principal.CanAccess(ctx, id); err != nil {
		handler.fail(w, scope, err, "passenger access denied")

		return
	}

	passenger, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get passenger by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, passenger)
}

// SearchByName lists passengers whose name contains the given text.
// @Summary Search passengers by name
// @Tags Passenger
// @Produce json
// @Param name query string true "Name"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPassengersResponse]
// @Failure 400 {object} response.Error
// @Router /api/passengers/searchByName [get]
// @Security BearerAuth
func (handler *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByName")
	defer scope.End()

	name, err := request.Required(r, "name")
	if err != nil {
		handler.fail(w, scope, err, "missing name")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	passengers, err := handler.service.SearchByName(ctx, name, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search passengers by name")

		return
	}

	response.WithJSON(w, http.StatusOK, passengers)
}

// SearchPassenger finds a passenger by phone or email.
// @Summary Search a passenger by contact
// @Tags Passenger
// @Produce json
// @Param phone query string false "Phone"
// @Param email query string false "Email"
// @Success 200 {object} response.Data[dto.PassengerResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/passengers/search [get]
// @Security BearerAuth
func (handler *Handler) SearchPassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchPassenger")
	defer scope.End()

	query := dto.ContactQuery{
		Phone: request.Query(r, "phone"),
		Email: request.Query(r, "email"),
	}

	passenger, err := handler.service.Search(ctx, query)
	if err != nil {
		handler.fail(w, scope, err, "failed to search passenger")

		return
	}

	response.WithJSON(w, http.StatusOK, passenger)
}

// CreatePassenger handles the creation of a new passenger.
// @Summary Create a new passenger
// @Tags Passenger
// @Accept json
// @Produce json
// @Param request body dto.CreatePassengerRequest true "Passenger"
// @Success 201 {object} response.Data[dto.PassengerResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/passengers [post]
// @Security BearerAuth
func (handler *Handler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePassenger")
	defer scope.End()

	req := dto.CreatePassengerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	passenger, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create passenger")

		return
	}

	scope.AddEvent("Passenger created successfully")

	response.WithJSON(w, http.StatusCreated, passenger)
}

// UpdatePassenger replaces the passenger identified in the body. Passengers may only update themselves.
// @Summary Update a passenger
// @Tags Passenger
// @Accept json
// @Produce json
// @Param request body dto.UpdatePassengerRequest true "Passenger"
// @Success 200 {object} response.Data[dto.PassengerResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/passengers [put]
// @Security BearerAuth
func (handler *Handler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePassenger")
	defer scope.End()

	req := dto.UpdatePassengerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := principal.CanAccess(ctx, req.ID); err != nil {
		handler.fail(w, scope, err, "passenger access denied")

		return
	}

	passenger, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update passenger")

		return
	}

	scope.AddEvent("Passenger updated successfully")

	response.WithJSON(w, http.StatusOK, passenger)
}

// DeletePassenger deletes a passenger. Passengers may only delete themselves.
// @Summary Delete a passenger
// @Tags Passenger
// @Param id path string true "Passenger ID"
// @Success 204
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/passengers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePassenger")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid passenger id")

		return
	}

	if err := principal.CanAccess(ctx, id); err != nil {
		handler.fail(w, scope, err, "passenger access denied")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete passenger")

		return
	}

	scope.AddEvent("Passenger deleted successfully")

	response.WithNoContent(w)
}
