package main

import (
	"os"

	"github.com/omnihost-tools/omnihost-ctl/cmd"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
