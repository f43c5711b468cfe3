package model

import (
	"airline/shared/model"
	"time"
)

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID            = "id"
	FieldAirline       = "airline"
	FieldFlightNumber  = "flight_number"
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDepartureTime = "departure_time"
	FieldArrivalTime   = "arrival_time"
	FieldPrice         = "price"
)

type Flight struct {
	ID            string    `db:"id"`
	Airline       string    `db:"airline"`
	FlightNumber  string    `db:"flight_number"`
	Origin        string    `db:"origin"`
	Destination   string    `db:"destination"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
	Price         float64   `db:"price"`
	model.Metadata
}
