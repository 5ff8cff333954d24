package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/reusee/turnbot/arena"
	"github.com/reusee/turnbot/botconfigs"
	"github.com/reusee/turnbot/bots"
	"github.com/reusee/turnbot/debugs"
	"github.com/reusee/turnbot/logs"
	"github.com/reusee/turnbot/sample"
	"github.com/reusee/turnbot/scripts"
	"github.com/reusee/turnbot/sessions"
	"github.com/reusee/turnbot/states"
	"github.com/reusee/turnbot/transcripts"
)

// Env is everything a run needs besides the grammar
type Env struct {
	Settings   botconfigs.Settings
	Logger     logs.Logger
	Diagnostic io.Writer
	Output     io.Writer
	Input      io.Reader
	// ReplayPath selects replaying a fixture instead of reading Input
	ReplayPath string
	// Tap, if set, is opened on every replayed state
	Tap debugs.Tap
}

func Run(ctx context.Context, env Env) error {
	switch env.Settings.Grammar {
	case "arena":
		return runGrammar(ctx, env, arena.Grammar{}, arena.Greedy{})
	case "sample":
		return runGrammar(ctx, env, sample.Grammar{}, bots.Const[sample.State]("WAIT"))
	}
	return fmt.Errorf("unknown grammar: %s", env.Settings.Grammar)
}

func runGrammar[Init, State any](
	ctx context.Context,
	env Env,
	grammar states.Grammar[Init, State],
	defaultAI bots.AI[State],
) error {
	ai := defaultAI
	if env.Settings.ScriptPath != "" {
		scripted, err := scripts.Load[State](env.Settings.ScriptPath)
		if err != nil {
			return err
		}
		scripted.Print = func(msg string) {
			env.Logger.InfoContext(ctx, "script", "msg", msg)
		}
		ai = scripted
	}
	decoder := states.NewDecoder(grammar)

	if env.ReplayPath != "" {
		fixture, err := transcripts.LoadFixture(env.ReplayPath)
		if err != nil {
			return err
		}
		replayer := &sessions.Replayer[Init, State]{
			Decoder: decoder,
			AI:      ai,
			Output:  env.Output,
			Logger:  env.Logger,

			TurnTimeout: env.Settings.TurnTimeout,
		}
		if env.Tap != nil {
			replayer.OnState = func(ctx context.Context, init Init, state State) error {
				turn, _ := logs.TurnFrom(ctx)
				return env.Tap(ctx, fmt.Sprintf("turn %d", turn), map[string]any{
					"init":  init,
					"state": state,
				})
			}
		}
		return replayer.Run(ctx, fixture)
	}

	session := uuid.NewString()
	logger := env.Logger.With("session", session)

	var sinks transcripts.Sinks
	if env.Settings.Transcript {
		sinks = append(sinks, transcripts.WriterSink{
			W: env.Diagnostic,
		})
	}
	if env.Settings.RecordPath != "" {
		recorder := transcripts.NewRecorder(env.Settings.RecordPath)
		recorder.Session = session
		sinks = append(sinks, recorder)
	}

	logger.InfoContext(ctx, "session start",
		"grammar", env.Settings.Grammar,
		"script", env.Settings.ScriptPath,
	)
	loop := &sessions.Session[Init, State]{
		Live:   states.NewLive(decoder, env.Input, sinks),
		AI:     ai,
		Output: env.Output,
		Logger: logger,

		TurnTimeout: env.Settings.TurnTimeout,
	}
	return loop.Run(ctx)
}
