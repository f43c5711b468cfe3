package dto

import (
	"airline/internal/domains/flight/model"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	gModel "airline/shared/model"
	"airline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateFlightRequest struct {
	Airline       string    `json:"airline"       validate:"required,max=100"          example:"Delta Airlines"`
	FlightNumber  string    `json:"flightNumber"  validate:"required,max=20"           example:"DL123"`
	Origin        string    `json:"origin"        validate:"required,max=100"          example:"London"`
	Destination   string    `json:"destination"   validate:"required,max=100"          example:"Tokyo"`
	DepartureTime time.Time `json:"departureTime" validate:"required"                  example:"2024-12-01T15:30:00Z"`
	ArrivalTime   time.Time `json:"arrivalTime"   validate:"required"                  example:"2024-12-01T18:45:00Z"`
	Price         float64   `json:"price"         validate:"required,gt=0"             example:"299.99"`
}

func (c *CreateFlightRequest) ToModel(user string) model.Flight {
	return model.Flight{
		ID:            uuid.NewString(),
		Airline:       c.Airline,
		FlightNumber:  c.FlightNumber,
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureTime: c.DepartureTime,
		ArrivalTime:   c.ArrivalTime,
		Price:         c.Price,
		Metadata:      gModel.NewMetadata(user),
	}
}

// UpdateFlightRequest replaces every field of the flight identified by ID.
type UpdateFlightRequest struct {
	ID            string    `json:"id"                                  validate:"required,uuid"`
	Airline       string    `json:"airline"       db:"airline"          validate:"required,max=100"`
	FlightNumber  string    `json:"flightNumber"  db:"flight_number"    validate:"required,max=20"`
	Origin        string    `json:"origin"        db:"origin"           validate:"required,max=100"`
	Destination   string    `json:"destination"   db:"destination"      validate:"required,max=100"`
	DepartureTime time.Time `json:"departureTime" db:"departure_time"   validate:"required"`
	ArrivalTime   time.Time `json:"arrivalTime"   db:"arrival_time"     validate:"required"`
	Price         float64   `json:"price"         db:"price"            validate:"required,gt=0"`
}

type FlightResponse struct {
	ID            string         `json:"id"`
	Airline       string         `json:"airline"`
	FlightNumber  string         `json:"flightNumber"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureTime string         `json:"departureTime"`
	ArrivalTime   string         `json:"arrivalTime"`
	Price         float64        `json:"price"`
	Metadata      *gDto.Metadata `json:"metadata,omitempty"`
}

func (r *FlightResponse) FromModel(model model.Flight) {
	r.ID = model.ID
	r.Airline = model.Airline
	r.FlightNumber = model.FlightNumber
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.DepartureTime = timezone.Format(model.DepartureTime, constant.DateFormat)
	r.ArrivalTime = timezone.Format(model.ArrivalTime, constant.DateFormat)
	r.Price = model.Price

	// flights embedded in seat, ticket and reservation views carry no audit columns
	if !model.CreatedAt.IsZero() {
		r.Metadata = &gDto.Metadata{}
		r.Metadata.FromModel(model.Metadata)
	}
}

// ToResponse maps a flight for listings.
func ToResponse(model model.Flight) FlightResponse {
	res := FlightResponse{}
	res.FromModel(model)

	return res
}

type GetFlightsResponse = gDto.Page[FlightResponse]

// LocationQuery selects flights by origin and destination; at least one must be given.
type LocationQuery struct {
	Origin      string
	Destination string
}

// TimeRangeQuery bounds departure or arrival time, both ends inclusive.
type TimeRangeQuery struct {
	Start time.Time
	End   time.Time
}
