package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/config"
	"airline/infras/kafka"
	kafkaMocks "airline/infras/kafka/mocks"
	"airline/infras/otel/mocks"
	passengerMocks "airline/internal/domains/passenger/mocks"
	reservationMocks "airline/internal/domains/reservation/mocks"
	"airline/internal/domains/reservation/model"
	"airline/internal/domains/reservation/model/dto"
	"airline/internal/domains/reservation/service"
	seatMocks "airline/internal/domains/seat/mocks"
	seatModel "airline/internal/domains/seat/model"
	ticketMocks "airline/internal/domains/ticket/mocks"
	ticketModel "airline/internal/domains/ticket/model"
	cacheMocks "airline/shared/cache/mocks"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	uowMocks "airline/shared/uow/mocks"
)

const topic = "airline.reservation"

type fixture struct {
	svc           service.Reservation
	repo          *reservationMocks.MockReservation
	seatRepo      *seatMocks.MockSeat
	passengerRepo *passengerMocks.MockPassenger
	ticketRepo    *ticketMocks.MockTicket
	uow           *uowMocks.UnitOfWork
	publisher     *kafkaMocks.MockClient
	cache         *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:          reservationMocks.NewMockReservation(ctrl),
		seatRepo:      seatMocks.NewMockSeat(ctrl),
		passengerRepo: passengerMocks.NewMockPassenger(ctrl),
		ticketRepo:    ticketMocks.NewMockTicket(ctrl),
		uow:           uowMocks.NewUnitOfWork(),
		publisher:     kafkaMocks.NewMockClient(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.Reservation = topic

	f.svc = service.New(f.repo, f.seatRepo, f.passengerRepo, f.ticketRepo, f.uow, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) expectInvalidation() {
	f.cache.EXPECT().Clear(gomock.Any(), "reservation:*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "seat:*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "ticket:*").Return(nil)
}

func availableSeat(available bool) seatModel.Seat {
	return seatModel.Seat{ID: "s-1", SeatNumber: "12A", IsAvailable: available, FlightID: "f-1", FlightNumber: "DL123"}
}

func hydrated(id, seatID, passengerID string, ticketID *string) model.Reservation {
	return model.Reservation{
		ID:              id,
		ReservationDate: time.Date(2024, 8, 30, 14, 30, 0, 0, time.UTC),
		SeatID:          seatID,
		PassengerID:     passengerID,
		SeatNumber:      "12A",
		SeatFlightID:    "f-1",
		FlightNumber:    "DL123",
		PassengerName:   "Isabel",
		TicketID:        ticketID,
	}
}

func TestReservationService_Create(t *testing.T) {
	req := dto.CreateReservationRequest{SeatID: "s-1", PassengerID: "p-1"}

	t.Run("books an available seat", func(t *testing.T) {
		f := newFixture(t)

		var (
			reservationID string
			ticket        ticketModel.Ticket
			seatFields    map[string]any
		)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(availableSeat(true), nil)
		f.passengerRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, r model.Reservation) error {
				reservationID = r.ID
				assert.Equal(t, "s-1", r.SeatID)
				assert.Equal(t, "p-1", r.PassengerID)
				assert.False(t, r.ReservationDate.IsZero())

				return nil
			})
		f.ticketRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, tk ticketModel.Ticket) error {
				ticket = tk

				return nil
			})
		f.seatRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
				seatFields = fields
				where, args := filter.GetWhereClause()
				assert.Equal(t, "(seats.id = :id)", where)
				assert.Equal(t, "s-1", args["id"])

				return nil
			})
		f.repo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ gDto.FilterGroup, _ ...string) (model.Reservation, error) {
				return hydrated(reservationID, "s-1", "p-1", &ticket.ID), nil
			})
		f.expectInvalidation()
		f.publisher.EXPECT().
			SendMessages(gomock.Any(), topic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				event, ok := messages[0].Value.(dto.Event)
				require.True(t, ok)
				assert.Equal(t, "reservation.created", event.Type)
				assert.Equal(t, reservationID, messages[0].Key)
				assert.Equal(t, ticket.ID, event.TicketID)

				return nil
			})

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, false, seatFields[seatModel.FieldIsAvailable])
		assert.Equal(t, reservationID, ticket.ReservationID)
		assert.Equal(t, "f-1", ticket.FlightID)
		assert.NotEmpty(t, ticket.TicketNumber)

		assert.Equal(t, reservationID, res.ID)
		assert.Equal(t, "s-1", res.Seat.ID)
		assert.Equal(t, "p-1", res.Passenger.ID)
		assert.Equal(t, "f-1", res.Seat.Flight.ID)
		require.NotNil(t, res.Ticket)
		assert.Equal(t, ticket.ID, res.Ticket.ID)
		assert.Equal(t, 1, f.uow.Committed)
	})

	t.Run("unavailable seat writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(availableSeat(false), nil)
		f.passengerRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindIllegalState))
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.EqualError(t, err, "Seat with id s-1 is not available.")
		assert.Equal(t, 1, f.uow.RolledBack)
		assert.Zero(t, f.uow.Committed)
	})

	t.Run("seat not found", func(t *testing.T) {
		f := newFixture(t)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(seatModel.Seat{}, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Seat not found with id s-1")
	})

	t.Run("passenger not found", func(t *testing.T) {
		f := newFixture(t)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(availableSeat(true), nil)
		f.passengerRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Passenger not found with id p-1")
	})

	t.Run("ticket insert failure rolls back without side effects", func(t *testing.T) {
		f := newFixture(t)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(availableSeat(true), nil)
		f.passengerRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.ticketRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 1, f.uow.RolledBack)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.seatRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(availableSeat(true), nil)
		f.passengerRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.ticketRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.seatRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hydrated("r-1", "s-1", "p-1", nil), nil)
		f.expectInvalidation()
		f.publisher.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "r-1", res.ID)
		assert.Nil(t, res.Ticket)
	})
}

func TestReservationService_Get(t *testing.T) {
	t.Run("returns stored foreign keys repeatably", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "reservation:get:r-1", gomock.Any()).Return(errors.New("miss")).Times(2)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydrated("r-1", "s-1", "p-1", nil), nil).Times(2)
		f.cache.EXPECT().Save(gomock.Any(), "reservation:get:r-1", gomock.Any(), 3600).Return(nil).Times(2)

		for range 2 {
			res, err := f.svc.Get(context.Background(), "r-1")
			require.NoError(t, err)
			assert.Equal(t, "s-1", res.Seat.ID)
			assert.Equal(t, "p-1", res.Passenger.ID)
		}
	})

	t.Run("not found is not cached", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.Get(context.Background(), "r-9")
		assert.EqualError(t, err, "Reservation not found with id r-9")
	})
}

func TestReservationService_GetByDate(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("malformed date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetByDate(context.Background(), "not-a-date", params)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "Invalid date format. Please use ISO 8601 format.")
	})

	t.Run("iso date", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(reservations.reservation_date = :reservation_date)", where)

			at, ok := args["reservation_date"].(time.Time)
			require.True(t, ok)
			assert.True(t, at.Equal(time.Date(2024, 8, 30, 14, 30, 0, 0, time.UTC)))

			return 1, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Reservation{hydrated("r-1", "s-1", "p-1", nil)}, nil)

		res, err := f.svc.GetByDate(context.Background(), "2024-08-30T14:30:00Z", params)
		require.NoError(t, err)
		assert.Len(t, res.Content, 1)
	})

	t.Run("a returned date finds its reservation", func(t *testing.T) {
		f := newFixture(t)

		stored := hydrated("r-1", "s-1", "p-1", nil)
		stored.ReservationDate = time.Date(2024, 8, 30, 14, 30, 0, 123456000, time.UTC)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			_, args := filter.GetWhereClause()

			at, ok := args["reservation_date"].(time.Time)
			require.True(t, ok)
			assert.True(t, at.Equal(stored.ReservationDate), "filter %s, stored %s", at, stored.ReservationDate)

			return 1, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Reservation{stored}, nil)

		res, err := f.svc.GetByDate(context.Background(), dto.ToResponse(stored).ReservationDate, params)
		require.NoError(t, err)
		require.Len(t, res.Content, 1)
		assert.Equal(t, "r-1", res.Content[0].ID)
	})
}

func TestReservationService_Search(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		query     dto.SearchQuery
		wantWhere string
	}{
		{name: "no criteria", query: dto.SearchQuery{}},
		{name: "seat only", query: dto.SearchQuery{SeatID: "s-1"}, wantWhere: "(reservations.seat_id = :seat_id)"},
		{name: "passenger only", query: dto.SearchQuery{PassengerID: "p-1"}, wantWhere: "(reservations.passenger_id = :passenger_id)"},
		{
			name:      "both",
			query:     dto.SearchQuery{SeatID: "s-1", PassengerID: "p-1"},
			wantWhere: "(reservations.seat_id = :seat_id AND reservations.passenger_id = :passenger_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantWhere != "" {
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantWhere, where)

					return 0, nil
				})
				f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Reservation{}, nil)
			}

			_, err := f.svc.Search(context.Background(), tt.query, params)

			if tt.wantWhere == "" {
				assert.EqualError(t, err, "At least one parameter (seatId or passengerId) must be provided.")

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	req := dto.UpdateReservationRequest{ID: "r-1", SeatID: "s-2", PassengerID: "p-1"}

	t.Run("reservation not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Reservation not found with id r-1")
	})

	t.Run("seat not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.seatRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Seat not found with id s-2")
	})

	t.Run("passenger not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.seatRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.passengerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Passenger not found with id p-1")
	})

	t.Run("re-points without touching seat availability", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.seatRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.passengerRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "s-2", fields[model.FieldSeatID])
				assert.Equal(t, "p-1", fields[model.FieldPassengerID])

				return nil
			})
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(hydrated("r-1", "s-2", "p-1", nil), nil)
		f.expectInvalidation()
		f.publisher.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)

		res, err := f.svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "s-2", res.Seat.ID)
	})
}

func TestReservationService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.Delete(context.Background(), "r-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deletes without restoring the seat", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydrated("r-1", "s-1", "p-1", nil), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.expectInvalidation()
		f.publisher.EXPECT().
			SendMessages(gomock.Any(), topic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Equal(t, "reservation.deleted", messages[0].Value.(dto.Event).Type)

				return nil
			})

		require.NoError(t, f.svc.Delete(context.Background(), "r-1"))
	})
}
