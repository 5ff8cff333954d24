package sessions

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/reusee/turnbot/bots"
	"github.com/reusee/turnbot/logs"
	"github.com/reusee/turnbot/procs"
	"github.com/reusee/turnbot/states"
	"github.com/reusee/turnbot/transcripts"
)

// Replayer runs a recorded fixture through the blob decoding path and the
// AI, one proc per recorded transcript
type Replayer[Init, State any] struct {
	Decoder states.Decoder[Init, State]
	AI      bots.AI[State]
	Output  io.Writer
	Logger  logs.Logger
	// TurnTimeout bounds each AI call when positive
	TurnTimeout time.Duration
	// OnState, if set, sees every decoded state before the AI does
	OnState func(ctx context.Context, init Init, state State) error
}

func (r *Replayer[Init, State]) Run(ctx context.Context, fixture *transcripts.Fixture) error {
	var init Init
	list := procs.Procs[context.Context]{
		ProcFunc(func(ctx context.Context) (Proc, error) {
			var err error
			init, err = r.Decoder.ReadInitText(fixture.Init)
			if err != nil {
				return nil, err
			}
			return nil, nil
		}),
	}

	for i, text := range fixture.Turns {
		turn := i + 1
		list = append(list, ProcFunc(func(ctx context.Context) (Proc, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			ctx = logs.WithTurn(ctx, turn)
			state, err := r.Decoder.ReadStateText(init, text)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", turn, err)
			}
			if r.OnState != nil {
				if err := r.OnState(ctx, init, state); err != nil {
					return nil, fmt.Errorf("turn %d: %w", turn, err)
				}
			}
			if err := respond(ctx, r.AI, r.TurnTimeout, r.Output, r.Logger, state); err != nil {
				return nil, fmt.Errorf("turn %d: %w", turn, err)
			}
			return nil, nil
		}))
	}

	if err := procs.Run[context.Context](ctx, list); err != nil {
		return err
	}
	r.Logger.InfoContext(ctx, "replay done", "turns", len(fixture.Turns))
	return nil
}
