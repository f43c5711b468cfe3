package auth_test

import (
	"airline/infras/otel/mocks"
	"airline/internal/domains/auth/model/dto"
	"airline/internal/handlers/auth"
	"airline/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	serviceMocks "airline/internal/domains/auth/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type body struct {
	Data struct {
		Name      string  `json:"name"`
		Token     *string `json:"token"`
		ExpiresAt *string `json:"expiresAt"`
	} `json:"data"`
}

func post(t *testing.T, svc *serviceMocks.MockAuth, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	handler := auth.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload)))

	return rec
}

func TestPassengerLogin(t *testing.T) {
	login := `{"email":"isabel@example.com","password":"1234567890"}`
	req := dto.LoginRequest{Email: "isabel@example.com", Password: "1234567890"}

	t.Run("success carries the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockAuth(ctrl)
		svc.EXPECT().PassengerLogin(gomock.Any(), req).
			Return(dto.Success("Isabel", "signed-token", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), nil)

		rec := post(t, svc, "/api/auth/passengers/login", login)
		require.Equal(t, http.StatusOK, rec.Code)

		var res body
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Isabel", res.Data.Name)
		require.NotNil(t, res.Data.Token)
		assert.Equal(t, "signed-token", *res.Data.Token)
		assert.NotNil(t, res.Data.ExpiresAt)
	})

	t.Run("wrong password is still a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockAuth(ctrl)
		svc.EXPECT().PassengerLogin(gomock.Any(), req).Return(dto.InvalidCredentials(), nil)

		rec := post(t, svc, "/api/auth/passengers/login", login)
		require.Equal(t, http.StatusOK, rec.Code)

		var res body
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, dto.NameInvalidCredentials, res.Data.Name)
		assert.Nil(t, res.Data.Token)
		assert.Nil(t, res.Data.ExpiresAt)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockAuth(ctrl)
		svc.EXPECT().PassengerLogin(gomock.Any(), req).Return(dto.Result{}, failure.NotFound("Email not found."))

		rec := post(t, svc, "/api/auth/passengers/login", login)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email not found.")
	})
}

func TestEmployeeRegister(t *testing.T) {
	t.Run("taken email is a sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockAuth(ctrl)
		svc.EXPECT().EmployeeRegister(gomock.Any(), gomock.Any()).Return(dto.EmailTaken(), nil)

		rec := post(t, svc, "/api/auth/employees/register", `{"name":"Carlos","email":"carlos@airline.com","password":"1234567890"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var res body
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, dto.NameEmailTaken, res.Data.Name)
		assert.Nil(t, res.Data.Token)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := serviceMocks.NewMockAuth(ctrl)

		rec := post(t, svc, "/api/auth/employees/register", `{"name":"Carlos","email":"carlos@airline.com","password":"123"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fields":["password"]`)
	})
}
