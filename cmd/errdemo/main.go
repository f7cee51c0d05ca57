package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/jmgilman/go/errmodel/internal/cli"
)

// main sets up logging from the ERRDEMO_DEBUG environment variable and runs
// the command line.
func main() {
	if os.Getenv("ERRDEMO_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	cli.Execute()
}
