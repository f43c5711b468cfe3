package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"airline/config"
	"airline/infras/otel/mocks"
	flightMocks "airline/internal/domains/flight/mocks"
	seatMocks "airline/internal/domains/seat/mocks"
	"airline/internal/domains/seat/model"
	"airline/internal/domains/seat/model/dto"
	"airline/internal/domains/seat/service"
	cacheMocks "airline/shared/cache/mocks"
	gDto "airline/shared/dto"
	"airline/shared/failure"
)

type fixture struct {
	svc        service.Seat
	repo       *seatMocks.MockSeat
	flightRepo *flightMocks.MockFlight
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       seatMocks.NewMockSeat(ctrl),
		flightRepo: flightMocks.NewMockFlight(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.flightRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func sampleSeat(available bool) model.Seat {
	return model.Seat{
		ID:                  "s-1",
		SeatNumber:          "12A",
		IsAvailable:         available,
		FlightID:            "f-1",
		FlightAirline:       "Delta Airlines",
		FlightNumber:        "DL123",
		FlightOrigin:        "London",
		FlightDestination:   "Tokyo",
		FlightDepartureTime: time.Date(2024, 12, 1, 15, 30, 0, 0, time.UTC),
		FlightArrivalTime:   time.Date(2024, 12, 1, 18, 45, 0, 0, time.UTC),
		FlightPrice:         299.99,
	}
}

func TestSeatService_Create(t *testing.T) {
	req := dto.CreateSeatRequest{SeatNumber: "12A", FlightID: "f-1"}

	t.Run("flight not found", func(t *testing.T) {
		f := newFixture(t)

		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Flight not found with id f-1")
	})

	t.Run("seat number taken on the flight", func(t *testing.T) {
		f := newFixture(t)

		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.True(t, failure.IsKind(err, failure.KindDataIntegrity))
	})

	t.Run("defaults to available", func(t *testing.T) {
		f := newFixture(t)

		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, seat model.Seat) error {
				assert.True(t, seat.IsAvailable)
				assert.Equal(t, "f-1", seat.FlightID)

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "seat:*").Return(nil)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(sampleSeat(true), nil)

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.IsAvailable)
		assert.Equal(t, "DL123", res.Flight.FlightNumber)
		assert.Nil(t, res.Flight.Metadata)
	})

	t.Run("explicitly unavailable", func(t *testing.T) {
		f := newFixture(t)
		unavailable := false

		f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, seat model.Seat) error {
				assert.False(t, seat.IsAvailable)

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "seat:*").Return(nil)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(sampleSeat(false), nil)

		_, err := f.svc.Create(context.Background(), dto.CreateSeatRequest{SeatNumber: "12A", FlightID: "f-1", IsAvailable: &unavailable})
		require.NoError(t, err)
	})
}

func TestSeatService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "seat:get:s-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.SeatResponse).ID = "s-1"

				return nil
			})

		res, err := f.svc.Get(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, "s-1", res.ID)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Seat{}, nil)

		_, err := f.svc.Get(context.Background(), "s-9")
		assert.EqualError(t, err, "Seat not found with id s-9")
	})
}

func TestSeatService_Search(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		query     dto.SearchQuery
		wantWhere string
		wantErr   bool
	}{
		{name: "no criteria", query: dto.SearchQuery{}, wantErr: true},
		{name: "blank criteria", query: dto.SearchQuery{SeatNumber: "  "}, wantErr: true},
		{name: "seat number only", query: dto.SearchQuery{SeatNumber: "12A"}, wantWhere: "(seats.seat_number = :seat_number)"},
		{name: "flight only", query: dto.SearchQuery{FlightID: "f-1"}, wantWhere: "(seats.flight_id = :flight_id)"},
		{
			name:      "both",
			query:     dto.SearchQuery{SeatNumber: "12A", FlightID: "f-1"},
			wantWhere: "(seats.seat_number = :seat_number AND seats.flight_id = :flight_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if !tt.wantErr {
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantWhere, where)

					return 1, nil
				})
				f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Seat{sampleSeat(true)}, nil)
			}

			res, err := f.svc.Search(context.Background(), tt.query, params)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.EqualError(t, err, "At least one parameter (seatNumber or flightId) must be provided.")

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Content, 1)
		})
	}
}

func TestSeatService_SearchByAvailability(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, args := filter.GetWhereClause()
		assert.Equal(t, "(seats.is_available = :is_available AND seats.flight_id = :flight_id)", where)
		assert.Equal(t, false, args["is_available"])

		return 0, nil
	})
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Seat{}, nil)

	res, err := f.svc.SearchByAvailability(context.Background(), dto.AvailabilityQuery{IsAvailable: false, FlightID: "f-1"}, params)
	require.NoError(t, err)
	assert.Empty(t, res.Content)
}

func TestSeatService_Update(t *testing.T) {
	available := false
	req := dto.UpdateSeatRequest{ID: "s-1", SeatNumber: "14C", IsAvailable: &available, FlightID: "f-1"}

	t.Run("seat not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), req)
		assert.EqualError(t, err, "Seat not found with id s-1")
	})

	t.Run("writes availability false", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			f.flightRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldIsAvailable])
				assert.Equal(t, "14C", fields[model.FieldSeatNumber])

				return nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(sampleSeat(false), nil)

		res, err := f.svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.IsAvailable)
	})
}

func TestSeatService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	assert.NoError(t, f.svc.Delete(context.Background(), "s-1"))
}
