package v1

import (
	"context"

	"github.com/reflectdiary/diary-api/pkg/security"
)

const TOKEN_CONTEXT_KEY = "__diary.access_token"

// InjectTokenClaim gets the verified token claims from the request context.
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}
