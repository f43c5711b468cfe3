package model

import (
	flightModel "airline/internal/domains/flight/model"
	"airline/shared/model"
	"time"
)

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID            = "id"
	FieldTicketNumber  = "ticket_number"
	FieldReservationID = "reservation_id"
	FieldFlightID      = "flight_id"
)

// Ticket is a tickets row joined with its reservation and flight.
type Ticket struct {
	ID            string `db:"id"`
	TicketNumber  string `db:"ticket_number"`
	ReservationID string `db:"reservation_id"`
	FlightID      string `db:"flight_id"`

	ReservationDate        time.Time `db:"reservation_date"         table:"reservations" column:"reservation_date"`
	ReservationSeatID      string    `db:"reservation_seat_id"      table:"reservations" column:"seat_id"`
	ReservationPassengerID string    `db:"reservation_passenger_id" table:"reservations" column:"passenger_id"`

	FlightAirline       string    `db:"flight_airline"        table:"flights" column:"airline"`
	FlightNumber        string    `db:"flight_number"         table:"flights" column:"flight_number"`
	FlightOrigin        string    `db:"flight_origin"         table:"flights" column:"origin"`
	FlightDestination   string    `db:"flight_destination"    table:"flights" column:"destination"`
	FlightDepartureTime time.Time `db:"flight_departure_time" table:"flights" column:"departure_time"`
	FlightArrivalTime   time.Time `db:"flight_arrival_time"   table:"flights" column:"arrival_time"`
	FlightPrice         float64   `db:"flight_price"          table:"flights" column:"price"`

	model.Metadata
}

func (Ticket) GetJoinQuery() string {
	return "JOIN reservations ON reservations.id = tickets.reservation_id JOIN flights ON flights.id = tickets.flight_id"
}

func (t Ticket) Flight() flightModel.Flight {
	return flightModel.Flight{
		ID:            t.FlightID,
		Airline:       t.FlightAirline,
		FlightNumber:  t.FlightNumber,
		Origin:        t.FlightOrigin,
		Destination:   t.FlightDestination,
		DepartureTime: t.FlightDepartureTime,
		ArrivalTime:   t.FlightArrivalTime,
		Price:         t.FlightPrice,
	}
}
