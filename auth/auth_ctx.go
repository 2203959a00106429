package auth

import (
	"context"
	"slices"
)

const RoleAdmin = "admin"

// Principal is the authenticated caller.
type Principal struct {
	UserID string   `json:"sub"`
	Roles  []string `json:"roles,omitempty"`
}

func (p Principal) IsAdmin() bool {
	return slices.Contains(p.Roles, RoleAdmin)
}

var ctxKeyPrincipal = struct{ name string }{name: "ctx-key-principal"}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok && p.UserID != ""
}
