package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Loocist23/2ta-mobile-app/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Operation failures already printed themselves through the
		// formatter; only surface errors cobra or the wiring produced.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
