package main

import (
	"os"

	"github.com/swat4julia/swatfreight/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
