package user

import "context"

// Identity is the acting user of a request, resolved once from the bearer
// token by the auth middleware.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

func (i Identity) IsHR() bool {
	return i.Role == RoleHR || i.Role == RoleAdmin
}

type identityCtxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext returns the acting identity or ErrIdentityMissing.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, ErrIdentityMissing
	}
	return id, nil
}
