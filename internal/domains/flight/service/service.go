package service

import (
	"airline/config"
	"airline/infras/otel"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/repository"
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
	cacheGetFlight    = shared.BuildCacheKey(constant.CachePrefixFlight, "get")
	cacheGetAllFlight = shared.BuildCacheKey(constant.CachePrefixFlight, "gets")
)

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) (dto.FlightResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	Get(ctx context.Context, id string) (dto.FlightResponse, error)
	GetByFlightNumber(ctx context.Context, flightNumber string) (dto.FlightResponse, error)
	SearchByAirline(ctx context.Context, airline string, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	SearchByLocation(ctx context.Context, query dto.LocationQuery, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	SearchByPrice(ctx context.Context, price float64, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	SearchByDepartureTime(ctx context.Context, query dto.TimeRangeQuery, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	SearchByArrivalTime(ctx context.Context, query dto.TimeRangeQuery, params gDto.QueryParams) (dto.GetFlightsResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightRequest) (dto.FlightResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Flight
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	group singleflight.Group
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func notFound(id string) error {
	return failure.NotFound("Flight not found with id " + id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldFlightNumber, req.FlightNumber)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight number")

		return res, fmt.Errorf("failed to check flight number: %w", err)
	}

	if exist {
		return res, failure.DataIntegrity("Flight Number already exists.") // nolint:wrapcheck
	}

	flight := req.ToModel(principal.Actor(ctx))

	if err = s.repo.Insert(ctx, flight); err != nil {
		log.Error().Err(err).Msg("failed to create flight")

		return res, fmt.Errorf("failed to create flight: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixFlight)

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFlight, params, gDto.FilterGroup{})

	return cache.Remember(ctx, s.cache, &s.group, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.GetFlightsResponse, error) {
		return s.page(ctx, params, gDto.FilterGroup{})
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, &s.group, shared.BuildCacheKey(cacheGetFlight, id), s.cfg.Cache.TTL, func(ctx context.Context) (dto.FlightResponse, error) {
		flight, err := s.get(ctx, s.repo.Get, shared.FilterByID(id, model.FieldID, model.TableName))
		if err == nil && flight.ID == constant.Empty {
			err = notFound(id)
		}

		return flight, err
	})
}

func (s *serviceImpl) GetByFlightNumber(ctx context.Context, flightNumber string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.GetByFlightNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.get(ctx, s.repo.Get, gDto.And(gDto.Eq(model.TableName, model.FieldFlightNumber, flightNumber)))
	if err != nil {
		return res, err
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("Flight not found with flight number " + flightNumber) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) SearchByAirline(ctx context.Context, airline string, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.SearchByAirline")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.And(gDto.Like(model.TableName, model.FieldAirline, airline)))
}

// SearchByLocation matches both ends exactly when both are given, otherwise the given end by substring.
func (s *serviceImpl) SearchByLocation(ctx context.Context, query dto.LocationQuery, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.SearchByLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = gDto.RequireAnyOf(
		gDto.Criterion{Name: "origin", Value: query.Origin},
		gDto.Criterion{Name: "destination", Value: query.Destination},
	); err != nil {
		return res, err //nolint:wrapcheck
	}

	var filter gDto.FilterGroup

	switch {
	case query.Origin != constant.Empty && query.Destination != constant.Empty:
		filter = gDto.And(
			gDto.Eq(model.TableName, model.FieldOrigin, query.Origin),
			gDto.Eq(model.TableName, model.FieldDestination, query.Destination),
		)
	case query.Origin != constant.Empty:
		filter = gDto.And(gDto.Like(model.TableName, model.FieldOrigin, query.Origin))
	default:
		filter = gDto.And(gDto.Like(model.TableName, model.FieldDestination, query.Destination))
	}

	return s.page(ctx, params, filter)
}

func (s *serviceImpl) SearchByPrice(ctx context.Context, price float64, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.SearchByPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.And(gDto.Eq(model.TableName, model.FieldPrice, price)))
}

func (s *serviceImpl) SearchByDepartureTime(ctx context.Context, query dto.TimeRangeQuery, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.SearchByDepartureTime")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.searchByTime(ctx, model.FieldDepartureTime, query, params)
}

func (s *serviceImpl) SearchByArrivalTime(ctx context.Context, query dto.TimeRangeQuery, params gDto.QueryParams) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.SearchByArrivalTime")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.searchByTime(ctx, model.FieldArrivalTime, query, params)
}

func (s *serviceImpl) searchByTime(ctx context.Context, field string, query dto.TimeRangeQuery, params gDto.QueryParams) (dto.GetFlightsResponse, error) {
	if query.End.Before(query.Start) {
		return dto.GetFlightsResponse{}, failure.BadRequestFromString("start must not be after end") // nolint:wrapcheck
	}

	return s.page(ctx, params, gDto.Between(model.TableName, field, query.Start, query.End))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return res, fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exist {
		return res, notFound(req.ID)
	}

	taken, err := s.repo.Exist(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldFlightNumber, req.FlightNumber),
		gDto.Filter{Field: model.FieldID, Value: req.ID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight number")

		return res, fmt.Errorf("failed to check flight number: %w", err)
	}

	if taken {
		return res, failure.DataIntegrity("Flight Number already exists.") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update flight")

		return res, fmt.Errorf("failed to update flight: %w", err)
	}

	// seats, tickets and reservations embed the flight
	shared.InvalidateCaches(ctx, s.cache,
		constant.CachePrefixFlight,
		constant.CachePrefixSeat,
		constant.CachePrefixReservation,
		constant.CachePrefixTicket,
	)

	return s.get(ctx, s.repo.GetPrimary, filter)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exist {
		return notFound(id)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	// seats, tickets and reservations go with the flight
	shared.InvalidateCaches(ctx, s.cache,
		constant.CachePrefixFlight,
		constant.CachePrefixSeat,
		constant.CachePrefixReservation,
		constant.CachePrefixTicket,
	)

	return nil
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Flight, error)

func (s *serviceImpl) get(ctx context.Context, read getter, filter gDto.FilterGroup) (res dto.FlightResponse, err error) {
	flight, err := read(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == constant.Empty {
		return res, nil
	}

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) page(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFlightsResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights")

		return res, fmt.Errorf("failed to count flights: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}
