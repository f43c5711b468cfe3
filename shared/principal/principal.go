package principal

import (
	"airline/shared/constant"
	"airline/shared/failure"
	"context"
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	ID    string
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, p.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, p.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, p.Role)

	return ctx
}

// FromContext returns the caller of ctx, false for anonymous requests.
func FromContext(ctx context.Context) (Principal, bool) {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == "" {
		return Principal{}, false
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Principal{ID: id, Email: email, Role: role}, true
}

// Actor names the caller for the audit columns.
func Actor(ctx context.Context) string {
	if p, ok := FromContext(ctx); ok {
		return p.ID
	}

	return constant.ContextGuest
}

// CanAccess allows administrators and the owner of the resource.
func CanAccess(ctx context.Context, ownerID string) error {
	p, ok := FromContext(ctx)
	if !ok {
		return failure.Unauthorized("Authentication is required to access this resource")
	}

	if p.IsAdmin() || p.ID == ownerID {
		return nil
	}

	return failure.ResourceRestrictedError
}
