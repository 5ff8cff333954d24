package botconfigs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turnbot/cmds"
	"github.com/reusee/turnbot/configs"
	"github.com/reusee/turnbot/modes"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "turnbot.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		getSettings GetSettings,
	) {
		settings, err := getSettings()
		if err != nil {
			t.Fatal(err)
		}
		if settings.Grammar != DefaultGrammar {
			t.Fatalf("got %v", settings.Grammar)
		}
		if !settings.Transcript {
			t.Fatal("transcript should default on")
		}
		if settings.ScriptPath != "" || settings.RecordPath != "" || settings.LogLevel != nil {
			t.Fatalf("got %+v", settings)
		}
	})
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
grammar: "sample"
script: "bot.star"
transcript: false
record: "session.yaml"
log_level: "debug"
turn_timeout: "2s"
`)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		getSettings GetSettings,
	) {
		settings, err := getSettings()
		if err != nil {
			t.Fatal(err)
		}
		if settings.Grammar != "sample" {
			t.Fatalf("got %v", settings.Grammar)
		}
		if settings.ScriptPath != "bot.star" {
			t.Fatalf("got %v", settings.ScriptPath)
		}
		if settings.Transcript {
			t.Fatal("transcript should be off")
		}
		if settings.RecordPath != "session.yaml" {
			t.Fatalf("got %v", settings.RecordPath)
		}
		if settings.LogLevel == nil || *settings.LogLevel != slog.LevelDebug {
			t.Fatalf("got %v", settings.LogLevel)
		}
		if settings.TurnTimeout != 2*time.Second {
			t.Fatalf("got %v", settings.TurnTimeout)
		}
	})
}

func TestTurnTimeoutFlag(t *testing.T) {
	path := writeConfig(t, `turn_timeout: "2s"`)
	cmds.GlobalExecutor.MustExecute([]string{"-turn-timeout", "150ms"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-turn-timeout."})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	).Call(func(
		getSettings GetSettings,
	) {
		settings, err := getSettings()
		if err != nil {
			t.Fatal(err)
		}
		if settings.TurnTimeout != 150*time.Millisecond {
			t.Fatalf("got %v", settings.TurnTimeout)
		}
	})
}

func TestSchemaRejects(t *testing.T) {
	for _, content := range []string{
		`grammar: "chess"`,
		`unknown: 1`,
		`transcript: "yes"`,
		`turn_timeout: "soon"`,
	} {
		path := writeConfig(t, content)
		dscope.New(
			new(Module),
			modes.ForTest(t),
		).Fork(
			func() configs.Loader {
				return configs.NewLoader([]string{path}, schema)
			},
		).Call(func(
			getSettings GetSettings,
		) {
			if _, err := getSettings(); err == nil {
				t.Fatalf("%s: should error", content)
			}
		})
	}
}

func TestDevelopmentSkipsDiscovery(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "turnbot.cue"), []byte(`grammar: "sample"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 0 {
			t.Fatalf("got %v", paths)
		}
	})
}
