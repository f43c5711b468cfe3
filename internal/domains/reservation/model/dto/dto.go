package dto

import (
	passengerDto "airline/internal/domains/passenger/model/dto"
	"airline/internal/domains/reservation/model"
	seatDto "airline/internal/domains/seat/model/dto"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"
	"airline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SeatID      string `json:"seatId"      validate:"required,uuid"`
	PassengerID string `json:"passengerId" validate:"required,uuid"`
}

// ToModel stamps the reservation date with now, cut to the microsecond precision Postgres keeps.
func (c *CreateReservationRequest) ToModel(user string, now time.Time) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		ReservationDate: now.Truncate(time.Microsecond),
		SeatID:          c.SeatID,
		PassengerID:     c.PassengerID,
		Metadata:        gModel.NewMetadata(user),
	}
}

type UpdateReservationRequest struct {
	ID          string `json:"id"                             validate:"required,uuid"`
	SeatID      string `json:"seatId"      db:"seat_id"       validate:"required,uuid"`
	PassengerID string `json:"passengerId" db:"passenger_id"  validate:"required,uuid"`
}

type TicketSummary struct {
	ID           string `json:"id"`
	TicketNumber string `json:"ticketNumber"`
}

type ReservationResponse struct {
	ID              string                         `json:"id"`
	ReservationDate string                         `json:"reservationDate"`
	Seat            seatDto.SeatResponse           `json:"seat"`
	Passenger       passengerDto.PassengerResponse `json:"passenger"`
	Ticket          *TicketSummary                 `json:"ticket"`
	Metadata        *gDto.Metadata                 `json:"metadata,omitempty"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.ReservationDate = timezone.Format(model.ReservationDate, constant.DateFormat)
	r.Seat.FromModel(model.Seat())
	r.Passenger.FromModel(model.Passenger())

	if model.HasTicket() {
		r.Ticket = &TicketSummary{ID: *model.TicketID}

		if model.TicketNumber != nil {
			r.Ticket.TicketNumber = *model.TicketNumber
		}
	}

	if !model.CreatedAt.IsZero() {
		r.Metadata = &gDto.Metadata{}
		r.Metadata.FromModel(model.Metadata)
	}
}

func ToResponse(model model.Reservation) ReservationResponse {
	res := ReservationResponse{}
	res.FromModel(model)

	return res
}

type GetReservationsResponse = gDto.Page[ReservationResponse]

// SearchQuery filters reservations by seat and/or passenger.
type SearchQuery struct {
	SeatID      string
	PassengerID string
}

// Event is the payload published on the reservation topic.
type Event struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservationId"`
	SeatID        string `json:"seatId"`
	PassengerID   string `json:"passengerId"`
	TicketID      string `json:"ticketId,omitempty"`
	OccurredAt    string `json:"occurredAt"`
}
