package match

import "context"

// Result is the resolved outcome applied to player aggregates together
// with the match record itself.
type Result struct {
	WinnerID int64
	LoserID  int64
	Points   int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	// Record stores the match with its games and applies the result to
	// both players' aggregates (winner wins+1 points+Points, loser
	// losses+1) as one atomic unit. Partial application is not allowed.
	Record(ctx context.Context, m Match, res Result) (Match, error)
	// List returns matches newest first, games included.
	List(ctx context.Context) ([]Match, error)
}
