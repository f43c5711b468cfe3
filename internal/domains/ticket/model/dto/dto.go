package dto

import (
	flightDto "airline/internal/domains/flight/model/dto"
	"airline/internal/domains/ticket/model"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"
	"airline/shared/timezone"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	TicketNumber  string `json:"ticketNumber"  validate:"required,max=50" example:"TCK-0001"`
	ReservationID string `json:"reservationId" validate:"required,uuid"`
	FlightID      string `json:"flightId"      validate:"required,uuid"`
}

func (c *CreateTicketRequest) ToModel(user string) model.Ticket {
	return model.Ticket{
		ID:            uuid.NewString(),
		TicketNumber:  c.TicketNumber,
		ReservationID: c.ReservationID,
		FlightID:      c.FlightID,
		Metadata:      gModel.NewMetadata(user),
	}
}

// UpdateTicketRequest only writes the ticket number. ReservationID and FlightID are accepted for
// compatibility with the create payload and ignored.
type UpdateTicketRequest struct {
	ID            string `json:"id"                               validate:"required,uuid"`
	TicketNumber  string `json:"ticketNumber"  db:"ticket_number" validate:"required,max=50"`
	ReservationID string `json:"reservationId"                    validate:"required,uuid"`
	FlightID      string `json:"flightId"                         validate:"required,uuid"`
}

type ReservationSummary struct {
	ID              string `json:"id"`
	ReservationDate string `json:"reservationDate"`
	SeatID          string `json:"seatId"`
	PassengerID     string `json:"passengerId"`
}

type TicketResponse struct {
	ID           string                   `json:"id"`
	TicketNumber string                   `json:"ticketNumber"`
	Reservation  ReservationSummary       `json:"reservation"`
	Flight       flightDto.FlightResponse `json:"flight"`
	Metadata     *gDto.Metadata           `json:"metadata,omitempty"`
}

func (r *TicketResponse) FromModel(model model.Ticket) {
	r.ID = model.ID
	r.TicketNumber = model.TicketNumber
	r.Reservation = ReservationSummary{
		ID:          model.ReservationID,
		SeatID:      model.ReservationSeatID,
		PassengerID: model.ReservationPassengerID,
	}

	if !model.ReservationDate.IsZero() {
		r.Reservation.ReservationDate = timezone.Format(model.ReservationDate, constant.DateFormat)
	}

	r.Flight.FromModel(model.Flight())

	if !model.CreatedAt.IsZero() {
		r.Metadata = &gDto.Metadata{}
		r.Metadata.FromModel(model.Metadata)
	}
}

func ToResponse(model model.Ticket) TicketResponse {
	res := TicketResponse{}
	res.FromModel(model)

	return res
}

type GetTicketsResponse = gDto.Page[TicketResponse]

// SearchQuery finds a single ticket by number and/or reservation.
type SearchQuery struct {
	TicketNumber  string
	ReservationID string
}
