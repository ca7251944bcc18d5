package main

import (
	"os"

	"github.com/forgo/guildstream/cmd/guildstream/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
