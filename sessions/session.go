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
)

type Proc = procs.Proc[context.Context]

type ProcFunc = procs.Func[context.Context]

// Session is the live control loop: read init once, then per turn read a
// state, ask the AI and write its command as one line to Output
type Session[Init, State any] struct {
	Live   *states.Live[Init, State]
	AI     bots.AI[State]
	Output io.Writer
	Logger logs.Logger
	// TurnTimeout bounds each AI call when positive
	TurnTimeout time.Duration
}

// Run returns the first decode, AI or write error. Blocking reads cannot be
// interrupted; ctx is checked between turns.
func (s *Session[Init, State]) Run(ctx context.Context) error {
	return procs.Run(ctx, s.initProc())
}

func (s *Session[Init, State]) initProc() Proc {
	return ProcFunc(func(ctx context.Context) (Proc, error) {
		init, err := s.Live.ReadInit()
		if err != nil {
			return nil, err
		}
		s.Logger.InfoContext(ctx, "init decoded")
		return s.turnProc(init), nil
	})
}

func (s *Session[Init, State]) turnProc(init Init) Proc {
	var proc ProcFunc
	proc = func(ctx context.Context) (Proc, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		state, err := s.Live.ReadState(init)
		if err != nil {
			return nil, err
		}
		ctx = logs.WithTurn(ctx, s.Live.Turn())
		if err := respond(ctx, s.AI, s.TurnTimeout, s.Output, s.Logger, state); err != nil {
			return nil, fmt.Errorf("turn %d: %w", s.Live.Turn(), err)
		}
		return proc, nil
	}
	return proc
}

// respond writes nothing when the AI fails or runs out of time
func respond[State any](
	ctx context.Context,
	ai bots.AI[State],
	timeout time.Duration,
	output io.Writer,
	logger logs.Logger,
	state State,
) error {
	aiCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	command, err := ai.GetCommand(aiCtx, state)
	if err != nil {
		return err
	}
	if err := aiCtx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(output, command+"\n"); err != nil {
		return err
	}
	logger.DebugContext(ctx, "command", "command", command)
	return nil
}
