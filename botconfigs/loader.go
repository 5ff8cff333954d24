package botconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turnbot/cmds"
	"github.com/reusee/turnbot/configs"
	"github.com/reusee/turnbot/logs"
	"github.com/reusee/turnbot/modes"
)

//go:embed schema.cue
var schema string

// FileNames are searched in the working directory, the user config
// directory and /etc, in that order of precedence
var FileNames = []string{
	"turnbot.cue",
	".turnbot.cue",
}

var configFlag = cmds.Var[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	if mode != modes.ModeProduction {
		return configs.NewLoader(paths, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range FileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
