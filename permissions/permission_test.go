package permissions_test

import (
	"airline/permissions"
	"airline/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{
			name:   "public login",
			path:   "/api/auth/passengers/login",
			method: http.MethodPost,
			skip:   true,
		},
		{
			name:   "index route with trailing slash",
			path:   "/api/flights/",
			method: http.MethodGet,
			skip:   true,
		},
		{
			name:   "admin only flight creation",
			path:   "/api/flights/",
			method: http.MethodPost,
			roles:  []string{constant.RoleAdmin},
		},
		{
			name:   "owner scoped reservation",
			path:   "/api/reservations/{id}",
			method: http.MethodGet,
			roles:  []string{constant.RoleUser, constant.RoleAdmin},
		},
		{
			name:   "admin only reservation listing",
			path:   "/api/reservations/searchByDate",
			method: http.MethodGet,
			roles:  []string{constant.RoleAdmin},
		},
		{
			name:   "unknown route",
			path:   "/api/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.ElementsMatch(t, tt.roles, permission.Permissions)
		})
	}
}
