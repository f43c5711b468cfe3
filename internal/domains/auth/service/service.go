package service

import (
	"airline/infras/jwt"
	"airline/infras/otel"
	"airline/internal/domains/auth/model/dto"
	employeeModel "airline/internal/domains/employee/model"
	employeeRepo "airline/internal/domains/employee/repository"
	passengerModel "airline/internal/domains/passenger/model"
	passengerRepo "airline/internal/domains/passenger/repository"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	"airline/shared/password"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const emailNotFoundMessage = "Email not found."

// Auth logs principals in and registers them. Wrong passwords and taken emails are reported as
// Result outcomes, not errors.
type Auth interface {
	PassengerLogin(ctx context.Context, req dto.LoginRequest) (dto.Result, error)
	PassengerRegister(ctx context.Context, req dto.PassengerRegisterRequest) (dto.Result, error)
	EmployeeLogin(ctx context.Context, req dto.LoginRequest) (dto.Result, error)
	EmployeeRegister(ctx context.Context, req dto.EmployeeRegisterRequest) (dto.Result, error)
}

type serviceImpl struct {
	passengerRepo passengerRepo.Passenger
	employeeRepo  employeeRepo.Employee
	hasher        password.Hasher
	jwtService    jwt.JWT
	otel          otel.Otel
}

func New(passengerRepo passengerRepo.Passenger, employeeRepo employeeRepo.Employee, hasher password.Hasher, jwt jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		passengerRepo: passengerRepo,
		employeeRepo:  employeeRepo,
		hasher:        hasher,
		jwtService:    jwt,
		otel:          otel,
	}
}

func (s *serviceImpl) PassengerLogin(ctx context.Context, req dto.LoginRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.PassengerLogin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	passenger, err := s.passengerRepo.Get(ctx, gDto.And(gDto.Eq(passengerModel.TableName, passengerModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get passenger")

		return res, fmt.Errorf("failed to get passenger: %w", err)
	}

	if passenger.ID == constant.Empty {
		return res, failure.NotFound(emailNotFoundMessage) // nolint:wrapcheck
	}

	if !s.hasher.Matches(req.Password, passenger.Password) {
		log.Warn().Str("email", req.Email).Msg("passenger login with wrong password")

		return dto.InvalidCredentials(), nil
	}

	return s.issue(passenger.ID, passenger.Email, passenger.Name, constant.RoleUser)
}

func (s *serviceImpl) PassengerRegister(ctx context.Context, req dto.PassengerRegisterRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.PassengerRegister")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.passengerRepo.Exist(ctx, gDto.And(gDto.Eq(passengerModel.TableName, passengerModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if passenger exists")

		return res, fmt.Errorf("failed to check if passenger exists: %w", err)
	}

	if taken {
		return dto.EmailTaken(), nil
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	passenger := req.ToModel(hashed)

	if err = s.passengerRepo.Insert(ctx, passenger); err != nil {
		log.Error().Err(err).Msg("failed to register passenger")

		return res, fmt.Errorf("failed to register passenger: %w", err)
	}

	return s.issue(passenger.ID, passenger.Email, passenger.Name, constant.RoleUser)
}

func (s *serviceImpl) EmployeeLogin(ctx context.Context, req dto.LoginRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.EmployeeLogin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.employeeRepo.Get(ctx, gDto.And(gDto.Eq(employeeModel.TableName, employeeModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound(emailNotFoundMessage) // nolint:wrapcheck
	}

	if !s.hasher.Matches(req.Password, employee.Password) {
		log.Warn().Str("email", req.Email).Msg("employee login with wrong password")

		return dto.InvalidCredentials(), nil
	}

	return s.issue(employee.ID, employee.Email, employee.Name, constant.RoleAdmin)
}

func (s *serviceImpl) EmployeeRegister(ctx context.Context, req dto.EmployeeRegisterRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.EmployeeRegister")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.employeeRepo.Exist(ctx, gDto.And(gDto.Eq(employeeModel.TableName, employeeModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return res, fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if taken {
		return dto.EmailTaken(), nil
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := req.ToModel(hashed)

	if err = s.employeeRepo.Insert(ctx, employee); err != nil {
		log.Error().Err(err).Msg("failed to register employee")

		return res, fmt.Errorf("failed to register employee: %w", err)
	}

	return s.issue(employee.ID, employee.Email, employee.Name, constant.RoleAdmin)
}

func (s *serviceImpl) issue(id, email, name, role string) (dto.Result, error) {
	token, err := s.jwtService.Issue(id, email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return dto.Result{}, fmt.Errorf("failed to issue token: %w", err)
	}

	expiresAt, err := s.jwtService.ExpirationOf(token)
	if err != nil {
		log.Error().Err(err).Msg("failed to read token expiration")

		return dto.Result{}, fmt.Errorf("failed to read token expiration: %w", err)
	}

	return dto.Success(name, token, expiresAt), nil
}
