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
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
	cacheMocks "airline/shared/cache/mocks"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	gModel "airline/shared/model"
)

func newService(t *testing.T) (service.Flight, *flightMocks.MockFlight, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := flightMocks.NewMockFlight(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func sampleFlight() model.Flight {
	departure := time.Date(2024, 12, 1, 15, 30, 0, 0, time.UTC)

	return model.Flight{
		ID:            "f-1",
		Airline:       "Delta Airlines",
		FlightNumber:  "DL123",
		Origin:        "London",
		Destination:   "Tokyo",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		Price:         299.99,
		Metadata:      gModel.NewMetadata("e-1"),
	}
}

func createRequest() dto.CreateFlightRequest {
	flight := sampleFlight()

	return dto.CreateFlightRequest{
		Airline:       flight.Airline,
		FlightNumber:  flight.FlightNumber,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Price:         flight.Price,
	}
}

func TestFlightService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *flightMocks.MockFlight, cache *cacheMocks.MockRedisCache)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *flightMocks.MockFlight, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, flight model.Flight) error {
						assert.NotEmpty(t, flight.ID)
						assert.Equal(t, "DL123", flight.FlightNumber)

						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), "flight:*").Return(nil)
			},
		},
		{
			name: "duplicate flight number",
			setupMock: func(repo *flightMocks.MockFlight, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDataIntegrity,
		},
		{
			name: "repository error",
			setupMock: func(repo *flightMocks.MockFlight, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Create(context.Background(), createRequest())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "DL123", res.FlightNumber)
			assert.Equal(t, "2024-12-01T15:30:00Z", res.DepartureTime)
		})
	}
}

func TestFlightService_Get(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), "flight:get:f-1", gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleFlight(), nil)
		cache.EXPECT().Save(gomock.Any(), "flight:get:f-1", gomock.Any(), 3600).Return(nil)

		res, err := svc.Get(context.Background(), "f-1")
		require.NoError(t, err)
		assert.Equal(t, "f-1", res.ID)
		assert.NotNil(t, res.Metadata)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Flight not found with id missing")
	})
}

func TestFlightService_GetByFlightNumber(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Flight{}, nil)

	_, err := svc.GetByFlightNumber(context.Background(), "XX000")
	assert.EqualError(t, err, "Flight not found with flight number XX000")
}

func TestFlightService_SearchByLocation(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		query     dto.LocationQuery
		wantWhere string
		wantErr   string
	}{
		{
			name:    "no criteria",
			query:   dto.LocationQuery{},
			wantErr: "At least one parameter (origin or destination) must be provided.",
		},
		{
			name:      "both ends match exactly",
			query:     dto.LocationQuery{Origin: "London", Destination: "Tokyo"},
			wantWhere: "(flights.origin = :origin AND flights.destination = :destination)",
		},
		{
			name:      "origin only matches by substring",
			query:     dto.LocationQuery{Origin: "lon"},
			wantWhere: "(LOWER(flights.origin) LIKE LOWER(:origin) )",
		},
		{
			name:      "destination only matches by substring",
			query:     dto.LocationQuery{Destination: "tok"},
			wantWhere: "(LOWER(flights.destination) LIKE LOWER(:destination) )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			if tt.wantErr == "" {
				assertWhere := func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					where, _ := filter.GetWhereClause()
					assert.Equal(t, tt.wantWhere, where)

					return 1, nil
				}

				repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(assertWhere)
				repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Flight{sampleFlight()}, nil)
			}

			res, err := svc.SearchByLocation(context.Background(), tt.query, params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Content, 1)
			assert.Equal(t, 1, res.TotalData)
		})
	}
}

func TestFlightService_SearchByDepartureTime(t *testing.T) {
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("inverted range", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.SearchByDepartureTime(context.Background(), dto.TimeRangeQuery{Start: start, End: start.Add(-time.Hour)}, params)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inclusive range", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(flights.departure_time >= :departure_time_from AND flights.departure_time <= :departure_time_to)", where)
			assert.Equal(t, start, args["departure_time_from"])

			return 0, nil
		})
		repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Flight{}, nil)

		res, err := svc.SearchByDepartureTime(context.Background(), dto.TimeRangeQuery{Start: start, End: start.Add(24 * time.Hour)}, params)
		require.NoError(t, err)
		assert.Empty(t, res.Content)
		assert.Equal(t, 1, res.TotalPage)
	})
}

func TestFlightService_Update(t *testing.T) {
	flight := sampleFlight()
	req := dto.UpdateFlightRequest{
		ID:            flight.ID,
		Airline:       flight.Airline,
		FlightNumber:  "DL999",
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Price:         350,
	}

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("flight number taken by another flight", func(t *testing.T) {
		svc, repo, _ := newService(t)

		gomock.InOrder(
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
		)

		_, err := svc.Update(context.Background(), req)
		assert.True(t, failure.IsKind(err, failure.KindDataIntegrity))
		assert.EqualError(t, err, "Flight Number already exists.")
	})

	t.Run("success replaces fields", func(t *testing.T) {
		svc, repo, cache := newService(t)

		updated := flight
		updated.FlightNumber = "DL999"
		updated.Price = 350

		gomock.InOrder(
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "DL999", fields[model.FieldFlightNumber])
				assert.InDelta(t, 350.0, fields[model.FieldPrice], 0.001)
				assert.NotContains(t, fields, model.FieldID)

				return nil
			})
		cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(4)
		repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := svc.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "DL999", res.FlightNumber)
	})
}

func TestFlightService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "f-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success invalidates dependent caches", func(t *testing.T) {
		svc, repo, cache := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			cache.EXPECT().Clear(gomock.Any(), "flight:*").Return(nil),
			cache.EXPECT().Clear(gomock.Any(), "seat:*").Return(nil),
			cache.EXPECT().Clear(gomock.Any(), "reservation:*").Return(nil),
			cache.EXPECT().Clear(gomock.Any(), "ticket:*").Return(nil),
		)

		assert.NoError(t, svc.Delete(context.Background(), "f-1"))
	})
}
