package main

import (
	"os"

	"github.com/manudejuan/home-finance/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
