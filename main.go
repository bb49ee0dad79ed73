package main

import (
	"os"

	"github.com/rami3l/govox/cmd"
)

func main() {
	if err := cmd.App().Execute(); err != nil {
		os.Exit(1)
	}
}
