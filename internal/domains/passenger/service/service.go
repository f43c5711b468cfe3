package service

import (
	"airline/config"
	"airline/infras/otel"
	"airline/internal/domains/passenger/model"
	"airline/internal/domains/passenger/model/dto"
	"airline/internal/domains/passenger/repository"
	"airline/shared"
	"airline/shared/cache"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/password"
	"airline/shared/principal"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Passenger interface {
	Create(ctx context.Context, req dto.CreatePassengerRequest) (dto.PassengerResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetPassengersResponse, error)
	Get(ctx context.Context, id string) (dto.PassengerResponse, error)
	SearchByName(ctx context.Context, name string, params gDto.QueryParams) (dto.GetPassengersResponse, error)
	Search(ctx context.Context, query dto.ContactQuery) (dto.PassengerResponse, error)
	Update(ctx context.Context, req dto.UpdatePassengerRequest) (dto.PassengerResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Passenger
	hasher password.Hasher
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Passenger, hasher password.Hasher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Passenger {
	return &serviceImpl{
		repo:   repo,
		hasher: hasher,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func notFound(id string) error {
	return failure.NotFound("Passenger not found with id " + id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePassengerRequest) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUnique(ctx, req.Email, req.Phone, constant.Empty); err != nil {
		return res, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	passenger := req.ToModel(principal.Actor(ctx), hashed)

	if err = s.repo.Insert(ctx, passenger); err != nil {
		log.Error().Err(err).Msg("failed to create passenger")

		return res, fmt.Errorf("failed to create passenger: %w", err)
	}

	res.FromModel(passenger)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetPassengersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.FilterGroup{})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	passenger, err := s.get(ctx, s.repo.Get, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if passenger.ID == constant.Empty {
		return res, notFound(id)
	}

	res.FromModel(passenger)

	return res, nil
}

func (s *serviceImpl) SearchByName(ctx context.Context, name string, params gDto.QueryParams) (res dto.GetPassengersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.SearchByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.And(gDto.Like(model.TableName, model.FieldName, name)))
}

func (s *serviceImpl) Search(ctx context.Context, query dto.ContactQuery) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = gDto.RequireAnyOf(
		gDto.Criterion{Name: "phone", Value: query.Phone},
		gDto.Criterion{Name: "email", Value: query.Email},
	); err != nil {
		return res, err //nolint:wrapcheck
	}

	field, value := model.FieldEmail, query.Email
	if query.Phone != constant.Empty {
		field, value = model.FieldPhone, query.Phone
	}

	passenger, err := s.get(ctx, s.repo.Get, gDto.And(gDto.Eq(model.TableName, field, value)))
	if err != nil {
		return res, err
	}

	if passenger.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("Passenger not found with %s %s", field, value)) // nolint:wrapcheck
	}

	res.FromModel(passenger)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePassengerRequest) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if passenger exists")

		return res, fmt.Errorf("failed to check if passenger exists: %w", err)
	}

	if !exist {
		return res, notFound(req.ID)
	}

	if err = s.ensureUnique(ctx, req.Email, req.Phone, req.ID); err != nil {
		return res, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	fields := shared.TransformFields(req, principal.Actor(ctx))
	fields[model.FieldPassword] = hashed

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update passenger")

		return res, fmt.Errorf("failed to update passenger: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixReservation)

	passenger, err := s.get(ctx, s.repo.GetPrimary, filter)
	if err != nil {
		return res, err
	}

	res.FromModel(passenger)

	return res, nil
}

// Delete is refused by storage while the passenger still holds reservations.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if passenger exists")

		return fmt.Errorf("failed to check if passenger exists: %w", err)
	}

	if !exist {
		return notFound(id)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete passenger")

		return fmt.Errorf("failed to delete passenger: %w", err)
	}

	return nil
}

// ensureUnique rejects an email or phone already held by a passenger other than exceptID.
func (s *serviceImpl) ensureUnique(ctx context.Context, email, phone, exceptID string) error {
	checks := []struct {
		field   string
		value   string
		message string
	}{
		{model.FieldEmail, email, "Email already exists."},
		{model.FieldPhone, phone, "Phone already exists."},
	}

	for _, check := range checks {
		filter := gDto.And(gDto.Eq(model.TableName, check.field, check.value))

		if exceptID != constant.Empty {
			filter = filter.Append(gDto.Filter{Field: model.FieldID, Value: exceptID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
		}

		taken, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Str("field", check.field).Msg("failed to check passenger uniqueness")

			return fmt.Errorf("failed to check passenger %s: %w", check.field, err)
		}

		if taken {
			return failure.DataIntegrity(check.message) // nolint:wrapcheck
		}
	}

	return nil
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Passenger, error)

func (s *serviceImpl) get(ctx context.Context, read getter, filter gDto.FilterGroup) (model.Passenger, error) {
	passenger, err := read(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get passenger")

		return passenger, fmt.Errorf("failed to get passenger: %w", err)
	}

	return passenger, nil
}

func (s *serviceImpl) page(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPassengersResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count passengers")

		return res, fmt.Errorf("failed to count passengers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get passengers")

		return res, fmt.Errorf("failed to get passengers: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}
