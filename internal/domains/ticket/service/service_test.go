package service_test

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/infras/otel/mocks"
	flightMocks "airline/internal/domains/flight/mocks"
	reservationMocks "airline/internal/domains/reservation/mocks"
	ticketMocks "airline/internal/domains/ticket/mocks"
	"airline/internal/domains/ticket/model"
	"airline/internal/domains/ticket/model/dto"
	"airline/internal/domains/ticket/service"
	cacheMocks "airline/shared/cache/mocks"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
)

type fixture struct {
	svc             service.Ticket
	repo            *ticketMocks.MockTicket
	reservationRepo *reservationMocks.MockReservation
	flightRepo      *flightMocks.MockFlight
	cache           *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:            ticketMocks.NewMockTicket(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		flightRepo:      flightMocks.NewMockFlight(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.reservationRepo, f.flightRepo, f.cache, mocks.NewOtel())

	return f
}

func sampleTicket() model.Ticket {
	return model.Ticket{
		ID:                     "t-1",
		TicketNumber:           "TCK-0001",
		ReservationID:          "r-1",
		FlightID:               "f-1",
		ReservationSeatID:      "s-1",
		ReservationPassengerID: "p-1",
		FlightNumber:           "DL123",
	}
}

func TestTicketService_Create(t *testing.T) {
	req := dto.CreateTicketRequest{TicketNumber: "TCK-0001", ReservationID: "r-1", FlightID: "f-1"}

	t.Run("duplicate number writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.True(t, failure.IsKind(err, failure.KindDataIntegrity))
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.EqualError(t, err, "Ticket number already exists.")
	})

	t.Run("reservation not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.EqualError(t, err, "Reservation not found with id r-1")
	})

	t.Run("flight not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.EqualError(t, err, "Flight not found with id f-1")
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.reservationRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tk model.Ticket) error {
				assert.Equal(t, "r-1", tk.ReservationID)

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "ticket:*").Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), "reservation:*").Return(nil)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(sampleTicket(), nil)

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "r-1", res.Reservation.ID)
		assert.Equal(t, "p-1", res.Reservation.PassengerID)
		assert.Equal(t, "f-1", res.Flight.ID)
	})
}

func TestTicketService_Search(t *testing.T) {
	tests := []struct {
		name      string
		query     dto.SearchQuery
		wantWhere string
		found     bool
		wantError string
	}{
		{name: "no criteria", wantError: "At least one parameter (ticketNumber or reservationId) must be provided."},
		{name: "by number", query: dto.SearchQuery{TicketNumber: "TCK-0001"}, wantWhere: "(tickets.ticket_number = :ticket_number)", found: true},
		{name: "by reservation", query: dto.SearchQuery{ReservationID: "r-1"}, wantWhere: "(tickets.reservation_id = :reservation_id)", found: true},
		{
			name:      "number wins over reservation",
			query:     dto.SearchQuery{TicketNumber: "TCK-0001", ReservationID: "r-2"},
			wantWhere: "(tickets.ticket_number = :ticket_number)",
			found:     true,
		},
		{
			name:      "unknown number",
			query:     dto.SearchQuery{TicketNumber: "TCK-9999"},
			wantWhere: "(tickets.ticket_number = :ticket_number)",
			wantError: "Ticket not found with ticket number TCK-9999",
		},
		{
			name:      "unknown reservation",
			query:     dto.SearchQuery{ReservationID: "r-9"},
			wantWhere: "(tickets.reservation_id = :reservation_id)",
			wantError: "Ticket not found with reservation id r-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantWhere != "" {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Ticket, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantWhere, where)

					if tt.found {
						return sampleTicket(), nil
					}

					return model.Ticket{}, nil
				})
			}

			res, err := f.svc.Search(context.Background(), tt.query)

			if tt.wantError != "" {
				assert.EqualError(t, err, tt.wantError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "t-1", res.ID)
		})
	}
}

func TestTicketService_Update(t *testing.T) {
	req := dto.UpdateTicketRequest{ID: "t-1", TicketNumber: "TCK-0002", ReservationID: "r-other", FlightID: "f-other"}

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Ticket not found with id t-1")
	})

	t.Run("number held by another ticket", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(tickets.ticket_number = :ticket_number AND tickets.id != :id)", where)

			return true, nil
		})

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Ticket number already exists.")
	})

	t.Run("only the number is rewritten", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.ElementsMatch(t,
					[]string{model.FieldTicketNumber, constant.FieldModifiedAt, constant.FieldModifiedBy},
					slices.Collect(maps.Keys(fields)),
				)
				assert.Equal(t, "TCK-0002", fields[model.FieldTicketNumber])

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(sampleTicket(), nil)

		res, err := f.svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "r-1", res.Reservation.ID)
		assert.Equal(t, "f-1", res.Flight.ID)
	})
}

func TestTicketService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(f.svc.Delete(context.Background(), "t-9")))
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		require.NoError(t, f.svc.Delete(context.Background(), "t-1"))
	})
}
