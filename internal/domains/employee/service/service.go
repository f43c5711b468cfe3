package service

import (
	"airline/infras/otel"
	"airline/internal/domains/employee/model"
	"airline/internal/domains/employee/model/dto"
	"airline/internal/domains/employee/repository"
	"airline/shared"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/password"
	"airline/shared/principal"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (dto.EmployeeResponse, error)
	SearchByName(ctx context.Context, name string, params gDto.QueryParams) (dto.GetEmployeesResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Employee
	hasher password.Hasher
	otel   otel.Otel
}

func New(repo repository.Employee, hasher password.Hasher, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:   repo,
		hasher: hasher,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureEmailFree(ctx, req.Email, constant.Empty); err != nil {
		return res, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := req.ToModel(principal.Actor(ctx), hashed)

	if err = s.repo.Insert(ctx, employee); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.FilterGroup{})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.find(ctx, s.repo.Get, model.FieldID, id)
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.find(ctx, s.repo.Get, model.FieldEmail, email)
}

func (s *serviceImpl) SearchByName(ctx context.Context, name string, params gDto.QueryParams) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.SearchByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.page(ctx, params, gDto.And(gDto.Like(model.TableName, model.FieldName, name)))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return res, fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Employee not found with id " + req.ID) // nolint:wrapcheck
	}

	if err = s.ensureEmailFree(ctx, req.Email, req.ID); err != nil {
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
		log.Error().Err(err).Msg("failed to update employee")

		return res, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.find(ctx, s.repo.GetPrimary, model.FieldID, req.ID)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Employee not found with id " + id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureEmailFree(ctx context.Context, email, exceptID string) error {
	filter := gDto.And(gDto.Eq(model.TableName, model.FieldEmail, email))

	if exceptID != constant.Empty {
		filter = filter.Append(gDto.Filter{Field: model.FieldID, Value: exceptID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee email")

		return fmt.Errorf("failed to check employee email: %w", err)
	}

	if taken {
		return failure.DataIntegrity("Email already exists.") // nolint:wrapcheck
	}

	return nil
}

type getter func(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Employee, error)

func (s *serviceImpl) find(ctx context.Context, read getter, field, value string) (res dto.EmployeeResponse, err error) {
	employee, err := read(ctx, gDto.And(gDto.Eq(model.TableName, field, value)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("Employee not found with %s %s", field, value)) // nolint:wrapcheck
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) page(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	return gDto.NewPage(models, params, total, dto.ToResponse), nil
}
