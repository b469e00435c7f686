// Package main is the entry point for twitchkit.
package main

import (
	"github.com/samber/lo"
	"github.com/twitchkit/twitchkit/cmd"
	"github.com/twitchkit/twitchkit/config"
	"github.com/twitchkit/twitchkit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
