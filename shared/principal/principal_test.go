package principal_test

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/principal"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	_, ok := principal.FromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, constant.ContextGuest, principal.Actor(context.Background()))

	ctx := principal.WithPrincipal(context.Background(), principal.Principal{ID: "p-1", Email: "jane@mail.com", Role: constant.RoleUser})

	p, ok := principal.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "jane@mail.com", p.Email)
	assert.False(t, p.IsAdmin())
	assert.Equal(t, "p-1", principal.Actor(ctx))
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		owner    string
		wantCode int
	}{
		{
			name:  "owner",
			ctx:   principal.WithPrincipal(context.Background(), principal.Principal{ID: "p-1", Role: constant.RoleUser}),
			owner: "p-1",
		},
		{
			name:  "admin bypasses ownership",
			ctx:   principal.WithPrincipal(context.Background(), principal.Principal{ID: "e-1", Role: constant.RoleAdmin}),
			owner: "p-1",
		},
		{
			name:     "other user",
			ctx:      principal.WithPrincipal(context.Background(), principal.Principal{ID: "p-2", Role: constant.RoleUser}),
			owner:    "p-1",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "anonymous",
			ctx:      context.Background(),
			owner:    "p-1",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := principal.CanAccess(tt.ctx, tt.owner)
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
