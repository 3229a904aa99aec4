package auth

import (
	"context"

	"github.com/spec-kit/book-purple/internal/domain"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "auth_identity"

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, identity)
}

// IdentityFromContext extracts the authenticated identity. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return identity, ok
}
