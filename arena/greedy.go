package arena

import (
	"context"
	"fmt"
	"math"

	"github.com/reusee/turnbot/bots"
	"github.com/reusee/turnbot/vecs"
)

// Greedy walks our unit straight at the target
type Greedy struct{}

var _ bots.AI[State] = Greedy{}

func (Greedy) GetCommand(_ context.Context, state State) (string, error) {
	me, ok := state.Unit(state.Init.MyID)
	if !ok {
		return "", fmt.Errorf("unit %d not in state", state.Init.MyID)
	}
	target := clamp(state.Target, state.Init)
	if me.Pos == target {
		return "WAIT", nil
	}
	next := me.Pos.MoveTowards(target, float64(state.Init.Speed))
	return "MOVE " + next.String(), nil
}

func clamp(v vecs.Vec, init Init) vecs.Vec {
	return vecs.New(
		math.Max(0, math.Min(v.X, float64(init.Width-1))),
		math.Max(0, math.Min(v.Y, float64(init.Height-1))),
	)
}
