package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turnbot/botconfigs"
	"github.com/reusee/turnbot/debugs"
	"github.com/reusee/turnbot/logs"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	BotConfigs botconfigs.Module
	Debugs     debugs.Module
}
