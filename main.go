package main

import (
	"os"

	"github.com/lanternworks/hookctl/cmd"
	"github.com/lanternworks/hookctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
