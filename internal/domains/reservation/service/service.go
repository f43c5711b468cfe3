package service

import (
	"airline/config"
	"airline/infras/kafka"
	"airline/infras/otel"
	passengerModel "airline/internal/domains/passenger/model"
	passengerRepo "airline/internal/domains/passenger/repository"
	"airline/internal/domains/reservation/model"
	"airline/internal/domains/reservation/model/dto"
	"airline/internal/domains/reservation/repository"
	seatModel "airline/internal/domains/seat/model"
	seatRepo "airline/internal/domains/seat/repository"
	ticketModel "airline/internal/domains/ticket/model"
	ticketRepo "airline/internal/domains/ticket/repository"
	"airline/shared"
	"airline/shared/cache"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	gModel "airline/shared/model"
	"airline/shared/principal"
	"airline/shared/timezone"
	"airline/shared/uow"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	cacheGetReservation    = shared.BuildCacheKey(constant.CachePrefixReservation, "get")
	cacheGetAllReservation = shared.BuildCacheKey(constant.CachePrefixReservation, "gets")
)

const invalidDateMessage = "Invalid date format. Please use ISO 8601 format."

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetByDate(ctx context.Context, date string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	Search(ctx context.Context, query dto.SearchQuery, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Reservation
	seatRepo      seatRepo.Seat
	passengerRepo passengerRepo.Passenger
	ticketRepo    ticketRepo.Ticket
	uow           uow.UnitOfWork
	publisher     kafka.Client
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	group         singleflight.Group
}

func New(
	repo repository.Reservation,
	seatRepo seatRepo.Seat,
	passengerRepo passengerRepo.Passenger,
	ticketRepo ticketRepo.Ticket,
	uow uow.UnitOfWork,
	publisher kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:          repo,
		seatRepo:      seatRepo,
		passengerRepo: passengerRepo,
		ticketRepo:    ticketRepo,
		uow:           uow,
		publisher:     publisher,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create books an available seat for a passenger. The reservation, its ticket and the seat flip
// are committed together; the availability check and the flip are not atomic against concurrent
// bookings of the same seat.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := principal.Actor(ctx)

	var created model.Reservation

	err = s.uow.Do(ctx, func(ctx context.Context, tx *sqlx.Tx, after func(uow.AfterCommit)) error {
		seatFilter := shared.FilterByID(req.SeatID, seatModel.FieldID, seatModel.TableName)

		seat, err := s.seatRepo.GetTx(ctx, tx, seatFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get seat")

			return fmt.Errorf("failed to get seat: %w", err)
		}

		if seat.ID == constant.Empty {
			return failure.NotFound("Seat not found with id " + req.SeatID) // nolint:wrapcheck
		}

		exist, err := s.passengerRepo.ExistTx(ctx, tx, shared.FilterByID(req.PassengerID, passengerModel.FieldID, passengerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if passenger exists")

			return fmt.Errorf("failed to check if passenger exists: %w", err)
		}

		if !exist {
			return failure.NotFound("Passenger not found with id " + req.PassengerID) // nolint:wrapcheck
		}

		if !seat.IsAvailable {
			return failure.IllegalState(fmt.Sprintf("Seat with id %s is not available.", seat.ID)) // nolint:wrapcheck
		}

		reservation := req.ToModel(actor, timezone.Now())

		if err = s.repo.InsertTx(ctx, tx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to create reservation")

			return fmt.Errorf("failed to create reservation: %w", err)
		}

		ticket := ticketModel.Ticket{
			ID:            uuid.NewString(),
			TicketNumber:  uuid.NewString(),
			ReservationID: reservation.ID,
			FlightID:      seat.FlightID,
			Metadata:      gModel.NewMetadata(actor),
		}

		if err = s.ticketRepo.InsertTx(ctx, tx, ticket); err != nil {
			log.Error().Err(err).Msg("failed to create ticket")

			return fmt.Errorf("failed to create ticket: %w", err)
		}

		occupied := map[string]any{
			seatModel.FieldIsAvailable: false,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   actor,
		}

		if err = s.seatRepo.UpdateTx(ctx, tx, occupied, seatFilter); err != nil {
			log.Error().Err(err).Msg("failed to mark seat unavailable")

			return fmt.Errorf("failed to mark seat unavailable: %w", err)
		}

		created, err = s.repo.GetTx(ctx, tx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get reservation")

			return fmt.Errorf("failed to get reservation: %w", err)
		}

		after(func(ctx context.Context) {
			s.afterWrite(ctx, constant.EventReservationCreated, created)
		})

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, gDto.FilterGroup{})

	return cache.Remember(ctx, s.cache, &s.group, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.GetReservationsResponse, error) {
		return s.page(ctx, params, gDto.FilterGroup{})
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, &s.group, shared.BuildCacheKey(cacheGetReservation, id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.ReservationResponse, error) {
		reservation, err := s.get(ctx, s.repo.Get, id)
		if err != nil {
			return dto.ReservationResponse{}, err
		}

		if reservation.ID == constant.Empty {
			return dto.ReservationResponse{}, failure.NotFound("Reservation not found with id " + id)
		}

		return dto.ToResponse(reservation), nil
	})
}

// GetByDate lists the reservations stamped exactly at the instant date names.
func (s *serviceImpl) GetByDate(ctx context.Context, date string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parsed, err := timezone.ParseISO8601(date)
	if err != nil {
		return res, failure.BadRequestFromString(invalidDateMessage) // nolint:wrapcheck
	}

	return s.page(ctx, params, gDto.And(gDto.Eq(model.TableName, model.FieldReservationDate, parsed)))
}

func (s *serviceImpl) Search(ctx context.Context, query dto.SearchQuery, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = gDto.RequireAnyOf(
		gDto.Criterion{Name: "seatId", Value: query.SeatID},
		gDto.Criterion{Name: "passengerId", Value: query.PassengerID},
	); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := gDto.And()

	if query.SeatID != constant.Empty {
		filter = filter.Append(gDto.Eq(model.TableName, model.FieldSeatID, query.SeatID))
	}

	if query.PassengerID != constant.Empty {
		filter = filter.Append(gDto.Eq(model.TableName, model.FieldPassengerID, query.PassengerID))
	}

	return s.page(ctx, params, filter)
}

// Update re-points a reservation. Availability of the old and new seats is left unchanged.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Reservation not found with id " + req.ID) // nolint:wrapcheck
	}

	exist, err = s.seatRepo.Exist(ctx, shared.FilterByID(req.SeatID, seatModel.FieldID, seatModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seat exists")

		return res, fmt.Errorf("failed to check if seat exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Seat not found with id " + req.SeatID) // nolint:wrapcheck
	}

	exist, err = s.passengerRepo.Exist(ctx, shared.FilterByID(req.PassengerID, passengerModel.FieldID, passengerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if passenger exists")

		return res, fmt.Errorf("failed to check if passenger exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Passenger not found with id " + req.PassengerID) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.get(ctx, s.repo.GetPrimary, req.ID)
	if err != nil {
		return res, err
	}

	s.afterWrite(ctx, constant.EventReservationUpdated, updated)

	res.FromModel(updated)

	return res, nil
}

// Delete removes the reservation and, through the storage cascade, its ticket. The seat stays unavailable.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.get(ctx, s.repo.Get, id)
	if err != nil {
		return err
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("Reservation not found with id " + id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.afterWrite(ctx, constant.EventReservationDeleted, reservation)

	return nil
}

// afterWrite drops every cache that embeds reservation state and announces the change.
// Neither step fails the request.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType string, reservation model.Reservation) {
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixReservation, constant.CachePrefixSeat, constant.CachePrefixTicket)

	event := dto.Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		SeatID:        reservation.SeatID,
		PassengerID:   reservation.PassengerID,
		OccurredAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if reservation.HasTicket() {
		event.TicketID = *reservation.TicketID
	}

	err := s.publisher.SendMessages(ctx, s.cfg.Kafka.Topics.Reservation, kafka.Message{Key: reservation.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Str("reservation_id", reservation.ID).Msg("failed to publish reservation event")
	}
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)

func (s *serviceImpl) get(ctx context.Context, read getter, id string) (model.Reservation, error) {
	reservation, err := read(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

func (s *serviceImpl) page(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}
