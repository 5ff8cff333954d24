package botconfigs

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reusee/turnbot/cmds"
	"github.com/reusee/turnbot/configs"
	"github.com/reusee/turnbot/vars"
)

var (
	grammarFlag      = cmds.Var[string]("-grammar")
	scriptFlag       = cmds.Var[string]("-script")
	recordFlag       = cmds.Var[string]("-record")
	noTranscriptFlag = cmds.Switch("-no-transcript")
	turnTimeoutFlag  = cmds.Var[time.Duration]("-turn-timeout")
)

const DefaultGrammar = "arena"

type Settings struct {
	Grammar    string
	ScriptPath string
	Transcript bool
	RecordPath string
	// TurnTimeout bounds each AI call; zero means no limit
	TurnTimeout time.Duration
	// LogLevel is nil unless a config file sets one
	LogLevel *slog.Level
}

type GetSettings func() (Settings, error)

// GetSettings resolves each setting from flags first, then config files
func (Module) GetSettings(
	loader configs.Loader,
) GetSettings {
	return sync.OnceValues(func() (ret Settings, err error) {
		grammar, err := configs.First[string](loader, "grammar")
		if err != nil {
			return ret, err
		}
		ret.Grammar = vars.FirstNonZero(
			*grammarFlag,
			grammar,
			DefaultGrammar,
		)

		script, err := configs.First[string](loader, "script")
		if err != nil {
			return ret, err
		}
		ret.ScriptPath = vars.FirstNonZero(
			*scriptFlag,
			script,
		)

		record, err := configs.First[string](loader, "record")
		if err != nil {
			return ret, err
		}
		ret.RecordPath = vars.FirstNonZero(
			*recordFlag,
			record,
		)

		transcript, err := configs.First[*bool](loader, "transcript")
		if err != nil {
			return ret, err
		}
		ret.Transcript = !*noTranscriptFlag && vars.DerefOr(transcript, true)

		timeoutText, err := configs.First[string](loader, "turn_timeout")
		if err != nil {
			return ret, err
		}
		var timeout time.Duration
		if timeoutText != "" {
			timeout, err = time.ParseDuration(timeoutText)
			if err != nil {
				return ret, fmt.Errorf("turn_timeout: %w", err)
			}
		}
		ret.TurnTimeout = vars.FirstNonZero(
			*turnTimeoutFlag,
			timeout,
		)

		levelName, err := configs.First[string](loader, "log_level")
		if err != nil {
			return ret, err
		}
		if levelName != "" {
			var level slog.Level
			if err := level.UnmarshalText([]byte(levelName)); err != nil {
				return ret, fmt.Errorf("log_level: %w", err)
			}
			ret.LogLevel = &level
		}

		return ret, nil
	})
}
