package reservation

import (
	"airline/infras/otel"
	"airline/internal/domains/reservation/model/dto"
	"airline/internal/domains/reservation/service"
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
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/searchByDate", handler.SearchByDate)
		routerGroup.Get("/search", handler.SearchReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Put("/", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetReservations lists reservations page by page.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Router /api/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	reservations, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get reservations")

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation. Passengers may only read their own.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid reservation id")

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get reservation by ID")

		return
	}

	if err := principal.CanAccess(ctx, reservation.Passenger.ID); err != nil {
		handler.fail(w, scope, err, "reservation access denied")

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// SearchByDate lists reservations stamped at the given instant.
// @Summary Search reservations by date
// @Tags Reservation
// @Produce json
// @Param reservationDate query string true "ISO-8601 date time"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /api/reservations/searchByDate [get]
// @Security BearerAuth
func (handler *Handler) SearchByDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchReservationsByDate")
	defer scope.End()

	date, err := request.Required(r, "reservationDate")
	if err != nil {
		handler.fail(w, scope, err, "missing reservation date")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	reservations, err := handler.service.GetByDate(ctx, date, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search reservations by date")

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// SearchReservations lists reservations by seat and/or passenger.
// @Summary Search reservations
// @Tags Reservation
// @Produce json
// @Param seatId query string false "Seat ID"
// @Param passengerId query string false "Passenger ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /api/reservations/search [get]
// @Security BearerAuth
func (handler *Handler) SearchReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchReservations")
	defer scope.End()

	seatID, err := request.OptionalUUID(r, "seatId")
	if err != nil {
		handler.fail(w, scope, err, "invalid seat id")

		return
	}

	passengerID, err := request.OptionalUUID(r, "passengerId")
	if err != nil {
		handler.fail(w, scope, err, "invalid passenger id")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	reservations, err := handler.service.Search(ctx, dto.SearchQuery{SeatID: seatID, PassengerID: passengerID}, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search reservations")

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// CreateReservation books a seat for a passenger and issues its ticket.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error "Seat is not available"
// @Router /api/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := principal.CanAccess(ctx, req.PassengerID); err != nil {
		handler.fail(w, scope, err, "reservation access denied")

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create reservation")

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// UpdateReservation re-points a reservation to another seat or passenger.
// Passengers may only move their own reservations and may not hand them to someone else.
// @Summary Update a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.UpdateReservationRequest true "Reservation"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/reservations [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	current, err := handler.service.Get(ctx, req.ID)
	if err != nil {
		handler.fail(w, scope, err, "failed to get reservation")

		return
	}

	for _, owner := range []string{current.Passenger.ID, req.PassengerID} {
		if err := principal.CanAccess(ctx, owner); err != nil {
			handler.fail(w, scope, err, "reservation access denied")

			return
		}
	}

	reservation, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update reservation")

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// DeleteReservation deletes a reservation and its ticket. The seat stays unavailable.
// @Summary Delete a reservation
// @Tags Reservation
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid reservation id")

		return
	}

	current, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get reservation")

		return
	}

	if err := principal.CanAccess(ctx, current.Passenger.ID); err != nil {
		handler.fail(w, scope, err, "reservation access denied")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete reservation")

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithNoContent(w)
}
