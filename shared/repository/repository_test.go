package repository

import (
	"airline/infras/otel/mocks"
	"airline/shared/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type auditRow struct {
	CreatedBy string `db:"created_by"`
}

type seatRow struct {
	ID           string  `db:"id"`
	SeatNumber   string  `db:"seat_number"`
	FlightID     string  `db:"flight_id"`
	FlightNumber string  `db:"flight_number" table:"flights"`
	FlightPrice  float64 `db:"flight_price"  table:"flights" column:"price"`
	Ignored      string
	auditRow
}

func (seatRow) GetJoinQuery() string {
	return "JOIN flights ON flights.id = seats.flight_id"
}

func newSeatRepo() Repository[seatRow] {
	return NewRepository[seatRow]("seat", "seats", "id", nil, mocks.NewOtel())
}

func TestNewRepository_Columns(t *testing.T) {
	repo := newSeatRepo()

	assert.Equal(t, []string{"id", "seat_number", "flight_id", "created_by"}, repo.InsertColumns)
	assert.Equal(t, "JOIN flights ON flights.id = seats.flight_id", repo.join)
	assert.Equal(t,
		"seats.id, seats.seat_number, seats.flight_id, flights.flight_number, flights.price AS flight_price, seats.created_by",
		repo.getSelectQuery(context.Background()),
	)
	assert.Equal(t, "seats.id, seats.seat_number", repo.getSelectQuery(context.Background(), "id", "seat_number"))
}

func TestRepository_Ordering(t *testing.T) {
	repo := newSeatRepo()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "default primary key", params: dto.QueryParams{}, want: "ORDER BY seats.id"},
		{name: "known column", params: dto.QueryParams{SortBy: "seat_number", SortDir: "DESC"}, want: "ORDER BY seats.seat_number DESC"},
		{name: "camel case property", params: dto.QueryParams{SortBy: "seatNumber", SortDir: "ASC"}, want: "ORDER BY seats.seat_number ASC"},
		{name: "joined alias", params: dto.QueryParams{SortBy: "flight_price"}, want: "ORDER BY flights.price ASC"},
		{name: "unknown column dropped", params: dto.QueryParams{SortBy: "1; DROP TABLE seats", SortDir: "ASC"}, want: "ORDER BY seats.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.ordering(tt.params))
		})
	}
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newSeatRepo()

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.And(dto.Eq("seats", "flight_id", "f-1")))
	assert.Equal(t, " WHERE (seats.flight_id = :flight_id) ", where)
	assert.Equal(t, map[string]any{"flight_id": "f-1"}, args)
}
