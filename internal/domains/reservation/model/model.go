package model

import (
	passengerModel "airline/internal/domains/passenger/model"
	seatModel "airline/internal/domains/seat/model"
	"airline/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldReservationDate = "reservation_date"
	FieldSeatID          = "seat_id"
	FieldPassengerID     = "passenger_id"
)

// Reservation is a reservations row hydrated with its seat, the seat's flight, the passenger and,
// when one exists, the ticket issued for it.
type Reservation struct {
	ID              string    `db:"id"`
	ReservationDate time.Time `db:"reservation_date"`
	SeatID          string    `db:"seat_id"`
	PassengerID     string    `db:"passenger_id"`

	SeatNumber      string `db:"seat_number"       table:"seats" column:"seat_number"`
	SeatIsAvailable bool   `db:"seat_is_available" table:"seats" column:"is_available"`
	SeatFlightID    string `db:"seat_flight_id"    table:"seats" column:"flight_id"`

	FlightAirline       string    `db:"flight_airline"        table:"flights" column:"airline"`
	FlightNumber        string    `db:"flight_number"         table:"flights" column:"flight_number"`
	FlightOrigin        string    `db:"flight_origin"         table:"flights" column:"origin"`
	FlightDestination   string    `db:"flight_destination"    table:"flights" column:"destination"`
	FlightDepartureTime time.Time `db:"flight_departure_time" table:"flights" column:"departure_time"`
	FlightArrivalTime   time.Time `db:"flight_arrival_time"   table:"flights" column:"arrival_time"`
	FlightPrice         float64   `db:"flight_price"          table:"flights" column:"price"`

	PassengerName  string `db:"passenger_name"  table:"passengers" column:"name"`
	PassengerEmail string `db:"passenger_email" table:"passengers" column:"email"`
	PassengerPhone string `db:"passenger_phone" table:"passengers" column:"phone"`

	TicketID     *string `db:"ticket_id"     table:"tickets" column:"id"`
	TicketNumber *string `db:"ticket_number" table:"tickets" column:"ticket_number"`

	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN seats ON seats.id = reservations.seat_id " +
		"JOIN flights ON flights.id = seats.flight_id " +
		"JOIN passengers ON passengers.id = reservations.passenger_id " +
		"LEFT JOIN tickets ON tickets.reservation_id = reservations.id"
}

func (r Reservation) Seat() seatModel.Seat {
	return seatModel.Seat{
		ID:                  r.SeatID,
		SeatNumber:          r.SeatNumber,
		IsAvailable:         r.SeatIsAvailable,
		FlightID:            r.SeatFlightID,
		FlightAirline:       r.FlightAirline,
		FlightNumber:        r.FlightNumber,
		FlightOrigin:        r.FlightOrigin,
		FlightDestination:   r.FlightDestination,
		FlightDepartureTime: r.FlightDepartureTime,
		FlightArrivalTime:   r.FlightArrivalTime,
		FlightPrice:         r.FlightPrice,
	}
}

func (r Reservation) Passenger() passengerModel.Passenger {
	return passengerModel.Passenger{
		ID:    r.PassengerID,
		Name:  r.PassengerName,
		Email: r.PassengerEmail,
		Phone: r.PassengerPhone,
	}
}

// HasTicket reports whether a ticket references this reservation.
func (r Reservation) HasTicket() bool {
	return r.TicketID != nil
}
