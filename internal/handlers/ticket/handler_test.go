package ticket_test

import (
	"airline/infras/otel/mocks"
	"airline/internal/domains/ticket/model/dto"
	"airline/internal/handlers/ticket"
	"airline/shared/constant"
	"airline/shared/principal"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	serviceMocks "airline/internal/domains/ticket/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	ticketID = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
	ownerID  = "1d2e3f4a-5b6c-4d7e-8f9a-0b1c2d3e4f5a"
)

func serve(t *testing.T, svc *serviceMocks.MockTicket, who principal.Principal, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := ticket.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	req := httptest.NewRequest(method, target, nil).WithContext(principal.WithPrincipal(context.Background(), who))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func owned() dto.TicketResponse {
	return dto.TicketResponse{
		ID:          ticketID,
		Reservation: dto.ReservationSummary{PassengerID: ownerID},
	}
}

func TestGetTicketByID(t *testing.T) {
	tests := []struct {
		name   string
		who    principal.Principal
		status int
	}{
		{name: "owner", who: principal.Principal{ID: ownerID, Role: constant.RoleUser}, status: http.StatusOK},
		{name: "admin", who: principal.Principal{ID: "e-1", Role: constant.RoleAdmin}, status: http.StatusOK},
		{name: "someone else", who: principal.Principal{ID: "p-2", Role: constant.RoleUser}, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := serviceMocks.NewMockTicket(ctrl)
			svc.EXPECT().Get(gomock.Any(), ticketID).Return(owned(), nil)

			assert.Equal(t, tt.status, serve(t, svc, tt.who, http.MethodGet, "/api/tickets/"+ticketID).Code)
		})
	}
}

func TestDeleteTicket(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockTicket(ctrl)
		svc.EXPECT().Get(gomock.Any(), ticketID).Return(owned(), nil)
		svc.EXPECT().Delete(gomock.Any(), ticketID).Return(nil)

		who := principal.Principal{ID: ownerID, Role: constant.RoleUser}

		assert.Equal(t, http.StatusNoContent, serve(t, svc, who, http.MethodDelete, "/api/tickets/"+ticketID).Code)
	})

	t.Run("someone else is refused before deleting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockTicket(ctrl)
		svc.EXPECT().Get(gomock.Any(), ticketID).Return(owned(), nil)

		who := principal.Principal{ID: "p-2", Role: constant.RoleUser}

		assert.Equal(t, http.StatusForbidden, serve(t, svc, who, http.MethodDelete, "/api/tickets/"+ticketID).Code)
	})
}

func TestSearchTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockTicket(ctrl)
	svc.EXPECT().Search(gomock.Any(), dto.SearchQuery{TicketNumber: "TCK-0001"}).Return(owned(), nil)

	who := principal.Principal{ID: "e-1", Role: constant.RoleAdmin}

	assert.Equal(t, http.StatusOK, serve(t, svc, who, http.MethodGet, "/api/tickets/search?ticketNumber=TCK-0001").Code)
}
