package logs

import "context"

type turnKey struct{}

// WithTurn tags log records made under ctx with the turn number
func WithTurn(ctx context.Context, turn int) context.Context {
	return context.WithValue(ctx, turnKey{}, turn)
}

func TurnFrom(ctx context.Context) (int, bool) {
	turn, ok := ctx.Value(turnKey{}).(int)
	return turn, ok
}
