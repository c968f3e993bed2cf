package httpapi

import (
	"context"

	"github.com/riskibarqy/pingpong-league/internal/domain/player"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p player.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (player.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(player.Principal)
	return p, ok
}
