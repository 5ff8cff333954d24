package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/turnbot/botconfigs"
	"github.com/reusee/turnbot/cmds"
	"github.com/reusee/turnbot/debugs"
	"github.com/reusee/turnbot/logs"
	"github.com/reusee/turnbot/modes"
)

var (
	replayPath = cmds.Var[string]("replay")
	doTap      = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		writer logs.Writer,
		getSettings botconfigs.GetSettings,
		tap debugs.Tap,
	) {
		settings, err := getSettings()
		if err != nil {
			logger.Error("settings", "error", err)
			os.Exit(1)
		}
		if settings.LogLevel != nil {
			logs.SetDefaultLevel(*settings.LogLevel)
		}

		env := Env{
			Settings:   settings,
			Logger:     logger,
			Diagnostic: writer,
			Output:     os.Stdout,
			Input:      os.Stdin,
			ReplayPath: *replayPath,
		}
		if *doTap {
			env.Tap = tap
		}

		if err := Run(context.Background(), env); err != nil {
			logger.Error("turnbot", "error", err)
			os.Exit(1)
		}
	})
}
