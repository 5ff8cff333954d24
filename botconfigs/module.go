package botconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turnbot/configs"
	"github.com/reusee/turnbot/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
