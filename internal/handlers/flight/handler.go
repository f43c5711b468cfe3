package flight

import (
	"airline/infras/otel"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
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
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFlights)
		routerGroup.Get("/searchByAirline", handler.SearchByAirline)
		routerGroup.Get("/searchByFlightNumber", handler.SearchByFlightNumber)
		routerGroup.Get("/searchByLocation", handler.SearchByLocation)
		routerGroup.Get("/searchByPrice", handler.SearchByPrice)
		routerGroup.Get("/searchByDepartureTime", handler.SearchByDepartureTime)
		routerGroup.Get("/searchByArrivalTime", handler.SearchByArrivalTime)
		routerGroup.Get("/{id}", handler.GetFlightByID)
		routerGroup.Post("/", handler.CreateFlight)
		routerGroup.Put("/", handler.UpdateFlight)
		routerGroup.Delete("/{id}", handler.DeleteFlight)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetFlights lists flights page by page.
// @Summary Get all flights
// @Tags Flight
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 500 {object} response.Error
// @Router /api/flights [get]
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	flights, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get flights")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID retrieves a flight by its ID.
// @Summary Get a flight by ID
// @Tags Flight
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/flights/{id} [get]
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid flight id")

		return
	}

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get flight by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, flight)
}

// SearchByAirline lists flights whose airline contains the given text, ignoring case.
// @Summary Search flights by airline
// @Tags Flight
// @Produce json
// @Param airline query string true "Airline"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Router /api/flights/searchByAirline [get]
func (handler *Handler) SearchByAirline(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByAirline")
	defer scope.End()

	airline, err := request.Required(r, "airline")
	if err != nil {
		handler.fail(w, scope, err, "missing airline")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	flights, err := handler.service.SearchByAirline(ctx, airline, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search flights by airline")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// SearchByFlightNumber retrieves the flight with the given number.
// @Summary Get a flight by flight number
// @Tags Flight
// @Produce json
// @Param flightNumber query string true "Flight number"
// @Success 200 {object} response.Data[dto.FlightResponse]
// @Failure 404 {object} response.Error
// @Router /api/flights/searchByFlightNumber [get]
func (handler *Handler) SearchByFlightNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByFlightNumber")
	defer scope.End()

	flightNumber, err := request.Required(r, "flightNumber")
	if err != nil {
		handler.fail(w, scope, err, "missing flight number")

		return
	}

	flight, err := handler.service.GetByFlightNumber(ctx, flightNumber)
	if err != nil {
		handler.fail(w, scope, err, "failed to get flight by number")

		return
	}

	response.WithJSON(w, http.StatusOK, flight)
}

// SearchByLocation lists flights by origin and/or destination.
// @Summary Search flights by location
// @Tags Flight
// @Produce json
// @Param origin query string false "Origin"
// @Param destination query string false "Destination"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Router /api/flights/searchByLocation [get]
func (handler *Handler) SearchByLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByLocation")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	query := dto.LocationQuery{
		Origin:      request.Query(r, "origin"),
		Destination: request.Query(r, "destination"),
	}

	flights, err := handler.service.SearchByLocation(ctx, query, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search flights by location")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// SearchByPrice lists flights with exactly the given price.
// @Summary Search flights by price
// @Tags Flight
// @Produce json
// @Param price query number true "Price"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Router /api/flights/searchByPrice [get]
func (handler *Handler) SearchByPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByPrice")
	defer scope.End()

	price, err := request.Float(r, "price")
	if err != nil {
		handler.fail(w, scope, err, "invalid price")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	flights, err := handler.service.SearchByPrice(ctx, price, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search flights by price")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// SearchByDepartureTime lists flights departing within [start, end].
// @Summary Search flights by departure time
// @Tags Flight
// @Produce json
// @Param start query string true "Range start, ISO-8601"
// @Param end query string true "Range end, ISO-8601"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Router /api/flights/searchByDepartureTime [get]
func (handler *Handler) SearchByDepartureTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByDepartureTime")
	defer scope.End()

	query, err := timeRange(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid departure time range")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	flights, err := handler.service.SearchByDepartureTime(ctx, query, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search flights by departure time")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// SearchByArrivalTime lists flights arriving within [start, end].
// @Summary Search flights by arrival time
// @Tags Flight
// @Produce json
// @Param start query string true "Range start, ISO-8601"
// @Param end query string true "Range end, ISO-8601"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 400 {object} response.Error
// @Router /api/flights/searchByArrivalTime [get]
func (handler *Handler) SearchByArrivalTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByArrivalTime")
	defer scope.End()

	query, err := timeRange(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid arrival time range")

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	flights, err := handler.service.SearchByArrivalTime(ctx, query, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to search flights by arrival time")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

func timeRange(r *http.Request) (dto.TimeRangeQuery, error) {
	start, err := request.Time(r, "start")
	if err != nil {
		return dto.TimeRangeQuery{}, err
	}

	end, err := request.Time(r, "end")
	if err != nil {
		return dto.TimeRangeQuery{}, err
	}

	return dto.TimeRangeQuery{Start: start, End: end}, nil
}

// CreateFlight handles the creation of a new flight.
// @Summary Create a new flight
// @Tags Flight
// @Accept json
// @Produce json
// @Param request body dto.CreateFlightRequest true "Flight"
// @Success 201 {object} response.Data[dto.FlightResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/flights [post]
// @Security BearerAuth
func (handler *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlight")
	defer scope.End()

	req := dto.CreateFlightRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	flight, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create flight")

		return
	}

	scope.AddEvent("Flight created successfully")

	response.WithJSON(w, http.StatusCreated, flight)
}

// UpdateFlight replaces the flight identified in the body.
// @Summary Update a flight
// @Tags Flight
// @Accept json
// @Produce json
// @Param request body dto.UpdateFlightRequest true "Flight"
// @Success 200 {object} response.Data[dto.FlightResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/flights [put]
// @Security BearerAuth
func (handler *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFlight")
	defer scope.End()

	req := dto.UpdateFlightRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	flight, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update flight")

		return
	}

	scope.AddEvent("Flight updated successfully")

	response.WithJSON(w, http.StatusOK, flight)
}

// DeleteFlight deletes a flight together with its seats and tickets.
// @Summary Delete a flight
// @Tags Flight
// @Param id path string true "Flight ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /api/flights/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlight")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid flight id")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete flight")

		return
	}

	scope.AddEvent("Flight deleted successfully")

	response.WithNoContent(w)
}
