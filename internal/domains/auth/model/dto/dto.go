package dto

import (
	employeeModel "airline/internal/domains/employee/model"
	passengerModel "airline/internal/domains/passenger/model"
	"airline/shared/constant"
	gModel "airline/shared/model"
	"airline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// Outcome tags the result of a login or registration attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeInvalidCredentials
	OutcomeEmailTaken
)

const (
	NameInvalidCredentials = "Invalid credentials"
	NameEmailTaken         = "Email already exists"
)

// Result carries a token only when Outcome is OutcomeSuccess.
type Result struct {
	Outcome   Outcome
	Name      string
	Token     string
	ExpiresAt time.Time
}

func Success(name, token string, expiresAt time.Time) Result {
	return Result{Outcome: OutcomeSuccess, Name: name, Token: token, ExpiresAt: expiresAt}
}

func InvalidCredentials() Result {
	return Result{Outcome: OutcomeInvalidCredentials}
}

func EmailTaken() Result {
	return Result{Outcome: OutcomeEmailTaken}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"isabel@example.com"`
	Password string `json:"password" validate:"required"       example:"1234567890"`
}

type PassengerRegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100" example:"Isabel"`
	Email    string `json:"email"    validate:"required,email"         example:"isabel@example.com"`
	Password string `json:"password" validate:"required,min=8"         example:"1234567890"`
	Phone    string `json:"phone"    validate:"required,min=10,max=15" example:"+1987654321"`
}

func (r *PassengerRegisterRequest) ToModel(hashedPassword string) passengerModel.Passenger {
	return passengerModel.Passenger{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Phone:    r.Phone,
		Metadata: gModel.NewMetadata(constant.ContextGuest),
	}
}

type EmployeeRegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100" example:"Carlos"`
	Email    string `json:"email"    validate:"required,email"         example:"carlos@airline.com"`
	Password string `json:"password" validate:"required,min=8"         example:"1234567890"`
}

func (r *EmployeeRegisterRequest) ToModel(hashedPassword string) employeeModel.Employee {
	return employeeModel.Employee{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(constant.ContextGuest),
	}
}

// AuthResponse is the payload for every auth outcome; sentinels carry no token.
type AuthResponse struct {
	Name      string  `json:"name"`
	Token     *string `json:"token"`
	ExpiresAt *string `json:"expiresAt"`
}

func (a *AuthResponse) FromResult(result Result) {
	switch result.Outcome {
	case OutcomeInvalidCredentials:
		a.Name = NameInvalidCredentials
	case OutcomeEmailTaken:
		a.Name = NameEmailTaken
	default:
		token := result.Token
		expiresAt := timezone.Format(result.ExpiresAt, constant.DateFormat)

		a.Name = result.Name
		a.Token = &token
		a.ExpiresAt = &expiresAt
	}
}
