package main

import (
	"os"

	"github.com/svalouch/go-rctclient/cmd/rctclient/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
