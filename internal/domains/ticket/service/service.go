package service

import (
	"airline/infras/otel"
	flightModel "airline/internal/domains/flight/model"
	flightRepo "airline/internal/domains/flight/repository"
	reservationModel "airline/internal/domains/reservation/model"
	reservationRepo "airline/internal/domains/reservation/repository"
	"airline/internal/domains/ticket/model"
	"airline/internal/domains/ticket/model/dto"
	"airline/internal/domains/ticket/repository"
	"airline/shared"
	"airline/shared/cache"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/principal"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Ticket interface {
	Create(ctx context.Context, req dto.CreateTicketRequest) (dto.TicketResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetTicketsResponse, error)
	Get(ctx context.Context, id string) (dto.TicketResponse, error)
	Search(ctx context.Context, query dto.SearchQuery) (dto.TicketResponse, error)
	Update(ctx context.Context, req dto.UpdateTicketRequest) (dto.TicketResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Ticket
	reservationRepo reservationRepo.Reservation
	flightRepo      flightRepo.Flight
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Ticket, reservationRepo reservationRepo.Reservation, flightRepo flightRepo.Flight, cache cache.RedisCache, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		cache:           cache,
		otel:            otel,
	}
}

// Create issues a ticket for an existing reservation and flight. A duplicate ticket number is
// rejected before anything is written.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTicketRequest) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureNumberFree(ctx, req.TicketNumber, constant.Empty); err != nil {
		return res, err
	}

	if err = s.ensureReferences(ctx, req.ReservationID, req.FlightID); err != nil {
		return res, err
	}

	ticket := req.ToModel(principal.Actor(ctx))

	if err = s.repo.Insert(ctx, ticket); err != nil {
		log.Error().Err(err).Msg("failed to create ticket")

		return res, fmt.Errorf("failed to create ticket: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTicket, constant.CachePrefixReservation)

	return s.find(ctx, s.repo.GetPrimary, shared.FilterByID(ticket.ID, model.FieldID, model.TableName), "Ticket not found with id "+ticket.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetTicketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count tickets")

		return res, fmt.Errorf("failed to count tickets: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get tickets")

		return res, fmt.Errorf("failed to get tickets: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.find(ctx, s.repo.Get, shared.FilterByID(id, model.FieldID, model.TableName), "Ticket not found with id "+id)
}

// Search finds one ticket by number or, when no number is given, by reservation.
func (s *serviceImpl) Search(ctx context.Context, query dto.SearchQuery) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = gDto.RequireAnyOf(
		gDto.Criterion{Name: "ticketNumber", Value: query.TicketNumber},
		gDto.Criterion{Name: "reservationId", Value: query.ReservationID},
	); err != nil {
		return res, err //nolint:wrapcheck
	}

	if query.TicketNumber != constant.Empty {
		filter := gDto.And(gDto.Eq(model.TableName, model.FieldTicketNumber, query.TicketNumber))

		return s.find(ctx, s.repo.Get, filter, "Ticket not found with ticket number "+query.TicketNumber)
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldReservationID, query.ReservationID))

	return s.find(ctx, s.repo.Get, filter, "Ticket not found with reservation id "+query.ReservationID)
}

// Update renumbers a ticket. Its reservation and flight never change.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTicketRequest) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ticket exists")

		return res, fmt.Errorf("failed to check if ticket exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Ticket not found with id " + req.ID) // nolint:wrapcheck
	}

	if err = s.ensureNumberFree(ctx, req.TicketNumber, req.ID); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update ticket")

		return res, fmt.Errorf("failed to update ticket: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTicket, constant.CachePrefixReservation)

	return s.find(ctx, s.repo.GetPrimary, filter, "Ticket not found with id "+req.ID)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ticket exists")

		return fmt.Errorf("failed to check if ticket exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Ticket not found with id " + id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete ticket")

		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTicket, constant.CachePrefixReservation)

	return nil
}

func (s *serviceImpl) ensureNumberFree(ctx context.Context, ticketNumber, exceptID string) error {
	filter := gDto.And(gDto.Eq(model.TableName, model.FieldTicketNumber, ticketNumber))

	if exceptID != constant.Empty {
		filter = filter.Append(gDto.Filter{Field: model.FieldID, Value: exceptID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check ticket number")

		return fmt.Errorf("failed to check ticket number: %w", err)
	}

	if taken {
		return failure.DataIntegrity("Ticket number already exists.") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ensureReferences(ctx context.Context, reservationID, flightID string) error {
	exist, err := s.reservationRepo.Exist(ctx, shared.FilterByID(reservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Reservation not found with id " + reservationID) // nolint:wrapcheck
	}

	exist, err = s.flightRepo.Exist(ctx, shared.FilterByID(flightID, flightModel.FieldID, flightModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Flight not found with id " + flightID) // nolint:wrapcheck
	}

	return nil
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ticket, error)

func (s *serviceImpl) find(ctx context.Context, get getter, filter gDto.FilterGroup, notFound string) (res dto.TicketResponse, err error) {
	ticket, err := get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == constant.Empty {
		return res, failure.NotFound(notFound) // nolint:wrapcheck
	}

	res.FromModel(ticket)

	return res, nil
}
