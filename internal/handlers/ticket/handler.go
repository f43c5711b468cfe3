package ticket

import (
	"airline/infras/otel"
	"airline/internal/domains/ticket/model/dto"
	"airline/internal/domains/ticket/service"
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
	service service.Ticket
	otel    otel.Otel
}

func New(service service.Ticket, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tickets", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTickets)
		routerGroup.Get("/search", handler.SearchTicket)
		routerGroup.Get("/{id}", handler.GetTicketByID)
		routerGroup.Post("/", handler.CreateTicket)
		routerGroup.Put("/", handler.UpdateTicket)
		routerGroup.Delete("/{id}", handler.DeleteTicket)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetTickets lists tickets page by page.
// @Summary Get all tickets
// @Tags Ticket
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTicketsResponse]
// @Router /api/tickets [get]
// @Security BearerAuth
func (handler *Handler) GetTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTickets")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	tickets, err := handler.service.GetAll(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to get tickets")

		return
	}

	response.WithJSON(w, http.StatusOK, tickets)
}

// SearchTicket finds a ticket by number and/or reservation.
// @Summary Search a ticket
// @Tags Ticket
// @Produce json
// @Param ticketNumber query string false "Ticket number"
// @Param reservationId query string false "Reservation ID"
// @Success 200 {object} response.Data[dto.TicketResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/tickets/search [get]
// @Security BearerAuth
func (handler *Handler) SearchTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchTicket")
	defer scope.End()

	reservationID, err := request.OptionalUUID(r, "reservationId")
	if err != nil {
		handler.fail(w, scope, err, "invalid reservation id")

		return
	}

	query := dto.SearchQuery{
		TicketNumber:  request.Query(r, "ticketNumber"),
		ReservationID: reservationID,
	}

	ticket, err := handler.service.Search(ctx, query)
	if err != nil {
		handler.fail(w, scope, err, "failed to search ticket")

		return
	}

	response.WithJSON(w, http.StatusOK, ticket)
}

// GetTicketByID retrieves a ticket. Passengers may only read tickets of their reservations.
// @Summary Get a ticket by ID
// @Tags Ticket
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Data[dto.TicketResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/tickets/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicketByID")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid ticket id")

		return
	}

	ticket, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get ticket by ID")

		return
	}

	if err := principal.CanAccess(ctx, ticket.Reservation.PassengerID); err != nil {
		handler.fail(w, scope, err, "ticket access denied")

		return
	}

	response.WithJSON(w, http.StatusOK, ticket)
}

// CreateTicket issues a ticket for an existing reservation.
// @Summary Create a ticket
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket"
// @Success 201 {object} response.Data[dto.TicketResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error "Ticket number already exists"
// @Router /api/tickets [post]
// @Security BearerAuth
func (handler *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTicket")
	defer scope.End()

	req := dto.CreateTicketRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	ticket, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to create ticket")

		return
	}

	scope.AddEvent("Ticket created successfully")

	response.WithJSON(w, http.StatusCreated, ticket)
}

// UpdateTicket replaces the ticket identified in the body.
// @Summary Update a ticket
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.UpdateTicketRequest true "Ticket"
// @Success 200 {object} response.Data[dto.TicketResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/tickets [put]
// @Security BearerAuth
func (handler *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTicket")
	defer scope.End()

	req := dto.UpdateTicketRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	ticket, err := handler.service.Update(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to update ticket")

		return
	}

	scope.AddEvent("Ticket updated successfully")

	response.WithJSON(w, http.StatusOK, ticket)
}

// DeleteTicket deletes a ticket. Passengers may only delete tickets of their reservations.
// @Summary Delete a ticket
// @Tags Ticket
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/tickets/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTicket")
	defer scope.End()

	id, err := request.ID(r)
	if err != nil {
		handler.fail(w, scope, err, "invalid ticket id")

		return
	}

	ticket, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(w, scope, err, "failed to get ticket")

		return
	}

	if err := principal.CanAccess(ctx, ticket.Reservation.PassengerID); err != nil {
		handler.fail(w, scope, err, "ticket access denied")

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.fail(w, scope, err, "failed to delete ticket")

		return
	}

	scope.AddEvent("Ticket deleted successfully")

	response.WithNoContent(w)
}
