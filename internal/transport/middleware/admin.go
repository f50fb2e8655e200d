package middleware

import (
	"context"

	"github.com/heartmarshall/phonics-backend/internal/auth"
	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated callers without the admin role.
// Call it from handlers, after Auth has populated the context.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if ctxutil.RoleFromCtx(ctx) != auth.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
