package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turnbot/cmds"
	"github.com/reusee/turnbot/modes"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestTurnAttr(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithTurn(context.Background(), 3)
		logger.InfoContext(ctx, "decoded")
		logger.With("grammar", "arena").InfoContext(ctx, "command")
		logger.Info("no turn")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "turn=3") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "turn=3") || !strings.Contains(lines[1], "grammar=arena") {
			t.Fatalf("got %v", lines[1])
		}
		if strings.Contains(lines[2], "turn=") {
			t.Fatalf("got %v", lines[2])
		}
	})
}

func TestDefaultLevel(t *testing.T) {
	defer SetLevel(slog.LevelInfo)

	SetDefaultLevel(slog.LevelWarn)
	if level.Level() != slog.LevelWarn {
		t.Fatalf("got %v", level.Level())
	}

	cmds.GlobalExecutor.MustExecute([]string{"-log-debug"})
	defer func() {
		levelFlagged = false
	}()
	SetDefaultLevel(slog.LevelError)
	if level.Level() != slog.LevelDebug {
		t.Fatalf("got %v", level.Level())
	}
}
