package dto

import (
	flightDto "airline/internal/domains/flight/model/dto"
	"airline/internal/domains/seat/model"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"

	"github.com/google/uuid"
)

type CreateSeatRequest struct {
	SeatNumber  string `json:"seatNumber"  validate:"required,max=10"   example:"12A"`
	IsAvailable *bool  `json:"isAvailable" validate:"omitempty"         example:"true"`
	FlightID    string `json:"flightId"    validate:"required,uuid"`
}

// ToModel defaults a new seat to available.
func (c *CreateSeatRequest) ToModel(user string) model.Seat {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Seat{
		ID:          uuid.NewString(),
		SeatNumber:  c.SeatNumber,
		IsAvailable: available,
		FlightID:    c.FlightID,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateSeatRequest struct {
	ID          string `json:"id"                             validate:"required,uuid"`
	SeatNumber  string `json:"seatNumber"  db:"seat_number"   validate:"required,max=10"`
	IsAvailable *bool  `json:"isAvailable" db:"is_available"  validate:"required"`
	FlightID    string `json:"flightId"    db:"flight_id"     validate:"required,uuid"`
}

type SeatResponse struct {
	ID          string                   `json:"id"`
	SeatNumber  string                   `json:"seatNumber"`
	IsAvailable bool                     `json:"isAvailable"`
	Flight      flightDto.FlightResponse `json:"flight"`
	Metadata    *gDto.Metadata           `json:"metadata,omitempty"`
}

func (r *SeatResponse) FromModel(model model.Seat) {
	r.ID = model.ID
	r.SeatNumber = model.SeatNumber
	r.IsAvailable = model.IsAvailable
	r.Flight.FromModel(model.Flight())

	if !model.CreatedAt.IsZero() {
		r.Metadata = &gDto.Metadata{}
		r.Metadata.FromModel(model.Metadata)
	}
}

func ToResponse(model model.Seat) SeatResponse {
	res := SeatResponse{}
	res.FromModel(model)

	return res
}

type GetSeatsResponse = gDto.Page[SeatResponse]

// SearchQuery selects seats by number and flight; at least one must be given.
type SearchQuery struct {
	SeatNumber string
	FlightID   string
}

// AvailabilityQuery selects seats by availability, optionally on one flight.
type AvailabilityQuery struct {
	IsAvailable bool
	FlightID    string
}
