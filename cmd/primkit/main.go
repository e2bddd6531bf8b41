package main

import (
	"os"

	"primkit/cmd/primkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
