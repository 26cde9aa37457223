package main

import (
	"os"

	"github.com/autumn-birds/micabox/cmd"
	"github.com/autumn-birds/micabox/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
