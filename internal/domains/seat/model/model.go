package model

import (
	flightModel "airline/internal/domains/flight/model"
	"airline/shared/model"
	"time"
)

const (
	TableName  = "seats"
	EntityName = "seat"

	FieldID          = "id"
	FieldSeatNumber  = "seat_number"
	FieldIsAvailable = "is_available"
	FieldFlightID    = "flight_id"
)

// Seat is a seats row joined with the flight it belongs to. The flight columns are read only.
type Seat struct {
	ID          string `db:"id"`
	SeatNumber  string `db:"seat_number"`
	IsAvailable bool   `db:"is_available"`
	FlightID    string `db:"flight_id"`

	FlightAirline       string    `db:"flight_airline"        table:"flights" column:"airline"`
	FlightNumber        string    `db:"flight_number"         table:"flights" column:"flight_number"`
	FlightOrigin        string    `db:"flight_origin"         table:"flights" column:"origin"`
	FlightDestination   string    `db:"flight_destination"    table:"flights" column:"destination"`
	FlightDepartureTime time.Time `db:"flight_departure_time" table:"flights" column:"departure_time"`
	FlightArrivalTime   time.Time `db:"flight_arrival_time"   table:"flights" column:"arrival_time"`
	FlightPrice         float64   `db:"flight_price"          table:"flights" column:"price"`

	model.Metadata
}

func (Seat) GetJoinQuery() string {
	return "JOIN flights ON flights.id = seats.flight_id"
}

// Flight returns the joined flight columns.
func (s Seat) Flight() flightModel.Flight {
	return flightModel.Flight{
		ID:            s.FlightID,
		Airline:       s.FlightAirline,
		FlightNumber:  s.FlightNumber,
		Origin:        s.FlightOrigin,
		Destination:   s.FlightDestination,
		DepartureTime: s.FlightDepartureTime,
		ArrivalTime:   s.FlightArrivalTime,
		Price:         s.FlightPrice,
	}
}
