package main

import (
	"os"

	"github.com/katalvlaran/complexsolver/cmd/complexsolver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
