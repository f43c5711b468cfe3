package flight_test

import (
	"airline/infras/otel/mocks"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/handlers/flight"
	"airline/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	serviceMocks "airline/internal/domains/flight/service/mocks"
	gDto "airline/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const flightID = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"

func serve(t *testing.T, svc *serviceMocks.MockFlight, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := flight.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestGetFlights_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockFlight(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, SortBy: "price", SortDir: "DESC"}).
		Return(dto.GetFlightsResponse{}, nil)

	rec := serve(t, svc, http.MethodGet, "/api/flights?page=2&size=5&sortBy=price&sortDir=desc")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchByLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockFlight(ctrl)
	svc.EXPECT().SearchByLocation(gomock.Any(), dto.LocationQuery{Origin: "London"}, gomock.Any()).
		Return(dto.GetFlightsResponse{}, nil)

	rec := serve(t, svc, http.MethodGet, "/api/flights/searchByLocation?origin=London")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchByPrice(t *testing.T) {
	t.Run("numeric price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)
		svc.EXPECT().SearchByPrice(gomock.Any(), 299.99, gomock.Any()).Return(dto.GetFlightsResponse{}, nil)

		assert.Equal(t, http.StatusOK, serve(t, svc, http.MethodGet, "/api/flights/searchByPrice?price=299.99").Code)
	})

	t.Run("non numeric price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)

		assert.Equal(t, http.StatusBadRequest, serve(t, svc, http.MethodGet, "/api/flights/searchByPrice?price=cheap").Code)
	})
}

func TestSearchByDepartureTime(t *testing.T) {
	t.Run("parses both ends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)

		query := dto.TimeRangeQuery{
			Start: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
		}
		svc.EXPECT().SearchByDepartureTime(gomock.Any(), query, gomock.Any()).Return(dto.GetFlightsResponse{}, nil)

		rec := serve(t, svc, http.MethodGet, "/api/flights/searchByDepartureTime?start=2024-12-01T00:00:00Z&end=2024-12-02T00:00:00Z")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)

		rec := serve(t, svc, http.MethodGet, "/api/flights/searchByDepartureTime?start=2024-12-01T00:00:00Z")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteFlight(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)
		svc.EXPECT().Delete(gomock.Any(), flightID).Return(nil)

		assert.Equal(t, http.StatusNoContent, serve(t, svc, http.MethodDelete, "/api/flights/"+flightID).Code)
	})

	t.Run("unknown flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockFlight(ctrl)
		svc.EXPECT().Delete(gomock.Any(), flightID).Return(failure.NotFound("Flight not found with id " + flightID))

		assert.Equal(t, http.StatusNotFound, serve(t, svc, http.MethodDelete, "/api/flights/"+flightID).Code)
	})
}
