package main

import (
	"os"

	"github.com/kerjamatch/kerjamatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
