package service

import (
	"airline/config"
	"airline/infras/otel"
	flightModel "airline/internal/domains/flight/model"
	flightRepo "airline/internal/domains/flight/repository"
	"airline/internal/domains/seat/model"
	"airline/internal/domains/seat/model/dto"
	"airline/internal/domains/seat/repository"
	"airline/shared"
	"airline/shared/cache"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/principal"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	cacheGetSeat    = shared.BuildCacheKey(constant.CachePrefixSeat, "get")
	cacheGetAllSeat = shared.BuildCacheKey(constant.CachePrefixSeat, "gets")
)

type Seat interface {
	Create(ctx context.Context, req dto.CreateSeatRequest) (dto.SeatResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetSeatsResponse, error)
	Get(ctx context.Context, id string) (dto.SeatResponse, error)
	Search(ctx context.Context, query dto.SearchQuery, params gDto.QueryParams) (dto.GetSeatsResponse, error)
	SearchByAvailability(ctx context.Context, query dto.AvailabilityQuery, params gDto.QueryParams) (dto.GetSeatsResponse, error)
	Update(ctx context.Context, req dto.UpdateSeatRequest) (dto.SeatResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Seat
	flightRepo flightRepo.Flight
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	group      singleflight.Group
}

func New(repo repository.Seat, flightRepo flightRepo.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:       repo,
		flightRepo: flightRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSeatRequest) (res dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureFlight(ctx, req.FlightID); err != nil {
		return res, err
	}

	if err = s.ensureSeatNumberFree(ctx, req.SeatNumber, req.FlightID, constant.Empty); err != nil {
		return res, err
	}

	seat := req.ToModel(principal.Actor(ctx))

	if err = s.repo.Insert(ctx, seat); err != nil {
		log.Error().Err(err).Msg("failed to create seat")

		return res, fmt.Errorf("failed to create seat: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSeat)

	return s.get(ctx, s.repo.GetPrimary, shared.FilterByID(seat.ID, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeat, params, gDto.FilterGroup{})

	return cache.Remember(ctx, s.cache, &s.group, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.GetSeatsResponse, error) {
		return s.page(ctx, params, gDto.FilterGroup{})
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, &s.group, shared.BuildCacheKey(cacheGetSeat, id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.SeatResponse, error) {
		seat, err := s.get(ctx, s.repo.Get, shared.FilterByID(id, model.FieldID, model.TableName))
		if err == nil && seat.ID == constant.Empty {
			err = failure.NotFound("Seat not found with id " + id)
		}

		return seat, err
	})
}

func (s *serviceImpl) Search(ctx context.Context, query dto.SearchQuery, params gDto.QueryParams) (res dto.GetSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = gDto.RequireAnyOf(
		gDto.Criterion{Name: "seatNumber", Value: query.SeatNumber},
		gDto.Criterion{Name: "flightId", Value: query.FlightID},
	); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := gDto.And()

	if query.SeatNumber != constant.Empty {
		filter = filter.Append(gDto.Eq(model.TableName, model.FieldSeatNumber, query.SeatNumber))
	}

	if query.FlightID != constant.Empty {
		filter = filter.Append(gDto.Eq(model.TableName, model.FieldFlightID, query.FlightID))
	}

	return s.page(ctx, params, filter)
}

func (s *serviceImpl) SearchByAvailability(ctx context.Context, query dto.AvailabilityQuery, params gDto.QueryParams) (res dto.GetSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.SearchByAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldIsAvailable, query.IsAvailable))

	if query.FlightID != constant.Empty {
		filter = filter.Append(gDto.Eq(model.TableName, model.FieldFlightID, query.FlightID))
	}

	return s.page(ctx, params, filter)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSeatRequest) (res dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seat exists")

		return res, fmt.Errorf("failed to check if seat exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Seat not found with id " + req.ID) // nolint:wrapcheck
	}

	if err = s.ensureFlight(ctx, req.FlightID); err != nil {
		return res, err
	}

	if err = s.ensureSeatNumberFree(ctx, req.SeatNumber, req.FlightID, req.ID); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update seat")

		return res, fmt.Errorf("failed to update seat: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSeat, constant.CachePrefixReservation)

	return s.get(ctx, s.repo.GetPrimary, filter)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if seat exists")

		return fmt.Errorf("failed to check if seat exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Seat not found with id " + id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete seat")

		return fmt.Errorf("failed to delete seat: %w", err)
	}

	// reservations on the seat and their tickets cascade
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSeat, constant.CachePrefixReservation, constant.CachePrefixTicket)

	return nil
}

func (s *serviceImpl) ensureFlight(ctx context.Context, flightID string) error {
	exist, err := s.flightRepo.Exist(ctx, shared.FilterByID(flightID, flightModel.FieldID, flightModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Flight not found with id " + flightID) // nolint:wrapcheck
	}

	return nil
}

// ensureSeatNumberFree rejects a seat number already used on the flight by a seat other than exceptID.
func (s *serviceImpl) ensureSeatNumberFree(ctx context.Context, seatNumber, flightID, exceptID string) error {
	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldSeatNumber, seatNumber),
		gDto.Eq(model.TableName, model.FieldFlightID, flightID),
	)

	if exceptID != constant.Empty {
		filter = filter.Append(gDto.Filter{Field: model.FieldID, Value: exceptID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check seat number")

		return fmt.Errorf("failed to check seat number: %w", err)
	}

	if taken {
		return failure.DataIntegrity("Seat number already exists for this flight.") // nolint:wrapcheck
	}

	return nil
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Seat, error)

func (s *serviceImpl) get(ctx context.Context, read getter, filter gDto.FilterGroup) (res dto.SeatResponse, err error) {
	seat, err := read(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat")

		return res, fmt.Errorf("failed to get seat: %w", err)
	}

	if seat.ID == constant.Empty {
		return res, nil
	}

	res.FromModel(seat)

	return res, nil
}

func (s *serviceImpl) page(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSeatsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count seats")

		return res, fmt.Errorf("failed to count seats: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return res, fmt.Errorf("failed to get seats: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}
