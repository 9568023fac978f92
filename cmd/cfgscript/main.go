package main

import (
	"os"

	"github.com/kettlebell/cfgscript/cmd/cfgscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
