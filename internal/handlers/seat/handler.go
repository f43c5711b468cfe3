package seat

import (
	"airline/infras/otel"
	"airline/internal/domains/seat/model/dto"
	"airline/internal/domains/seat/service"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/validator"
	"airline/transport/http/request"
	"airline/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seat
	otel    otel.Otel
}

func New(service service.Seat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSeats)
		routerGroup.Get("/search", handler.SearchSeats)
		routerGroup.Get("/searchByAvailability", handler.SearchByAvailability)
		routerGroup.Get("/{id}", handler.GetSeatByID)
		routerGroup.Post("/", handler.CreateSeat)
		routerGroup.Put("/", handler.UpdateSeat)
		routerGroup.Delete("/{id}", handler.DeleteSeat)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetSeats lists seats page by page.
// @Summary Get all seats
// @Tags Seat
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSeatsResponse]
// @Router /api/seats [get]
func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	seats, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get seats")

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

// GetSeatByID retrieves a seat by its ID.
// @Summary Get a seat by ID
// @Tags Seat
// @Produce json
// @Param id path string true "Seat ID"
// @Success 200 {object} response.Data[dto.SeatResponse]
// @Failure 404 {object} response.Error
// @Router /api/seats/{id} [get]
func (handler *Handler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeatByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid seat id")

		return
	}

	seat, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get seat by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, seat)
}

// SearchSeats lists seats by seat number and/or flight.
// @Summary Search seats
// @Tags Seat
// @Produce json
// @Param seatNumber query string false "Seat number"
// @Param flightId query string false "Flight ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSeatsResponse]
// @Failure 400 {object} response.Error
// @Router /api/seats/search [get]
func (handler *Handler) SearchSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchSeats")
	defer scope.End()

	flightID, err := request.OptionalUUID(r, "flightId")
	if err != nil {
		handler.fail(w, scope, err, "invalid flight id")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	query := dto.SearchQuery{
		SeatNumber: request.Query(r, "seatNumber"),
		FlightID:   flightID,
	}

	seats, err := handler.service.Search(ctx, query, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search seats")

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

// SearchByAvailability lists seats by availability, optionally on one flight.
// @Summary Search seats by availability
// @Tags Seat
// @Produce json
// @Param isAvailable query boolean true "Availability"
// @Param flightId query string false "Flight ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSeatsResponse]
// @Failure 400 {object} response.Error
// @Router /api/seats/searchByAvailability [get]
func (handler *Handler) SearchByAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByAvailability")
	defer scope.End()

	available, err := request.Bool(r, "isAvailable")
	if err != nil {
		handler.fail(w, scope, err, "invalid availability")

		return
	}

	flightID, err := request.OptionalUUID(r, "flightId")
	if err != nil {
		handler.fail(w, scope, err, "invalid flight id")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	seats, err := handler.service.SearchByAvailability(ctx, dto.AvailabilityQuery{IsAvailable: available, FlightID: flightID}, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search seats by availability")

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}

// CreateSeat handles the creation of a new seat.
// @Summary Create a new seat
// @Tags Seat
// @Accept json
// @Produce json
// @Param request body dto.CreateSeatRequest true "Seat"
// @Success 201 {object} response.Data[dto.SeatResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/seats [post]
// @Security BearerAuth
func (handler *Handler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeat")
	defer scope.End()

	req := dto.CreateSeatRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	seat, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create seat")

		return
	}

	scope.AddEvent("Seat created successfully")

	response.WithJSON(w, http.StatusCreated, seat)
}

// UpdateSeat replaces the seat identified in the body.
// @Summary Update a seat
// @Tags Seat
// @Accept json
// @Produce json
// @Param request body dto.UpdateSeatRequest true "Seat"
// @Success 200 {object} response.Data[dto.SeatResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/seats [put]
// @Security BearerAuth
func (handler *Handler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSeat")
	defer scope.End()

	req := dto.UpdateSeatRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	seat, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update seat")

		return
	}

	scope.AddEvent("Seat updated successfully")

	response.WithJSON(w, http.StatusOK, seat)
}

// DeleteSeat deletes a seat together with its reservations.
// @Summary Delete a seat
// @Tags Seat
// @Param id path string true "Seat ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /api/seats/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSeat")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid seat id")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete seat")

		return
	}

	scope.AddEvent("Seat deleted successfully")

	response.WithNoContent(w)
}
