// Package cli implements the errdemo command line.
package cli

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errmodel/chain"
	"github.com/jmgilman/go/errmodel/reporter"
)

// errReported marks a failure that has already been written by the reporter.
var errReported = chain.New("run failed")

// Execute runs the errdemo command line against the working directory and
// exits with status 1 on failure.
func Execute() {
	rootCmd := createRootCmd(osfs.New("."))

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed.")
		if !errors.Is(err, errReported) {
			reporter.Report(os.Stderr, err)
		}
		os.Exit(reporter.ExitFailure)
	}
}

func createRootCmd(fs billy.Filesystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "errdemo",
		Short:         "Compare error representations on small call sites",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		runCmd(fs),
		listCmd(),
		versionCmd(),
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	return rootCmd
}
