package middleware_test

import (
	"airline/config"
	"airline/infras/jwt"
	"airline/infras/otel/mocks"
	"airline/permissions"
	"airline/shared/constant"
	"airline/shared/principal"
	"airline/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtMocks "airline/infras/jwt/mocks"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		current, _ := principal.FromContext(r.Context())
		w.Header().Set("X-Principal", current.ID)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(authRole.APIKey)
	router.Use(authRole.Auth)
	router.Use(authRole.RBAC)
	router.Route("/api", func(r chi.Router) {
		r.Route("/flights", func(r chi.Router) {
			r.Get("/", echo)
			r.Post("/", echo)
		})
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/{id}", echo)
		})
	})

	return router
}

func claims(subject, role string) *jwt.Claims {
	return &jwt.Claims{
		Email:            subject + "@example.com",
		Role:             role,
		RegisteredClaims: gojwt.RegisteredClaims{Subject: subject, ID: "token-" + subject},
	}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		header    map[string]string
		setup     func(m *jwtMocks.MockJWT)
		status    int
		principal string
	}{
		{
			name:   "public route needs no token",
			method: http.MethodGet,
			path:   "/api/flights",
			status: http.StatusOK,
		},
		{
			name:   "protected route without token",
			method: http.MethodPost,
			path:   "/api/flights",
			status: http.StatusUnauthorized,
		},
		{
			name:   "malformed authorization header",
			method: http.MethodPost,
			path:   "/api/flights",
			header: map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			status: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodPost,
			path:   "/api/flights",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer expired"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("expired").Return(nil, jwt.ErrExpiredToken)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "user cannot create flights",
			method: http.MethodPost,
			path:   "/api/flights",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer user"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("user").Return(claims("p-1", constant.RoleUser), nil)
			},
			status: http.StatusForbidden,
		},
		{
			name:   "admin creates flights",
			method: http.MethodPost,
			path:   "/api/flights/",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer admin"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("admin").Return(claims("e-1", constant.RoleAdmin), nil)
			},
			status:    http.StatusOK,
			principal: "e-1",
		},
		{
			name:   "user reaches owner scoped route",
			method: http.MethodGet,
			path:   "/api/reservations/r-1",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer user"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().Validate("user").Return(claims("p-1", constant.RoleUser), nil)
			},
			status:    http.StatusOK,
			principal: "p-1",
		},
		{
			name:      "valid api key bypasses token checks",
			method:    http.MethodPost,
			path:      "/api/flights",
			header:    map[string]string{constant.RequestHeaderAPIKey: apiKey},
			status:    http.StatusOK,
			principal: constant.ContextSystem,
		},
		{
			name:   "wrong api key",
			method: http.MethodGet,
			path:   "/api/flights",
			header: map[string]string{constant.RequestHeaderAPIKey: "nope"},
			status: http.StatusForbidden,
		},
		{
			name:   "unknown route falls through to not found",
			method: http.MethodGet,
			path:   "/api/unknown",
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.setup != nil {
				tt.setup(jwtService)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			newRouter(t, jwtService).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.principal, rec.Header().Get("X-Principal"))
		})
	}
}
