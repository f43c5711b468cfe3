package dto

import (
	"airline/internal/domains/passenger/model"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"

	"github.com/google/uuid"
)

type CreatePassengerRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100" example:"Isabel"`
	Email    string `json:"email"    validate:"required,email"         example:"isabel@example.com"`
	Password string `json:"password" validate:"required,min=8"         example:"1234567890"`
	Phone    string `json:"phone"    validate:"required,min=10,max=15" example:"+1987654321"`
}

// ToModel builds the row with an already hashed password.
func (c *CreatePassengerRequest) ToModel(user, hashedPassword string) model.Passenger {
	return model.Passenger{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Phone:    c.Phone,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdatePassengerRequest struct {
	ID       string `json:"id"                       validate:"required,uuid"`
	Name     string `json:"name"     db:"name"       validate:"required,min=1,max=100"`
	Email    string `json:"email"    db:"email"      validate:"required,email"`
	Password string `json:"password" db:"password"   validate:"required,min=8"`
	Phone    string `json:"phone"    db:"phone"      validate:"required,min=10,max=15"`
}

type PassengerResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Metadata *gDto.Metadata `json:"metadata,omitempty"`
}

func (r *PassengerResponse) FromModel(model model.Passenger) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone

	if !model.CreatedAt.IsZero() {
		r.Metadata = &gDto.Metadata{}
		r.Metadata.FromModel(model.Metadata)
	}
}

func ToResponse(model model.Passenger) PassengerResponse {
	res := PassengerResponse{}
	res.FromModel(model)

	return res
}

type GetPassengersResponse = gDto.Page[PassengerResponse]

// ContactQuery looks a passenger up by phone or email; phone wins when both are given.
type ContactQuery struct {
	Phone string
	Email string
}
