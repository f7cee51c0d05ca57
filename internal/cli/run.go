package cli

import (
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errmodel/demo"
	"github.com/jmgilman/go/errmodel/reporter"
	"github.com/jmgilman/go/errmodel/table"
)

func runCmd(fs billy.Filesystem) *cobra.Command {
	var (
		key       uint32
		tablePath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run one demo and report its outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := demo.Find(args[0])
			if err != nil {
				return err
			}

			ids, err := loadTable(fs, tablePath)
			if err != nil {
				return err
			}

			format := reporter.FormatText
			if asJSON {
				format = reporter.FormatJSON
			}

			log.Debug().Str("demo", d.Name).Str("strategy", string(d.Strategy)).Uint32("key", key).Msg("Running demo.")
			runErr := d.Run(demo.Env{FS: fs, Table: ids, Key: key})
			if code := reporter.New(cmd.OutOrStdout(), format).Report(runErr); code != reporter.ExitSuccess {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&key, "key", "k", demo.DefaultKey, "id to look up")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "YAML or TOML file holding the id table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the outcome as JSON")

	return cmd
}

func loadTable(fs billy.Filesystem, path string) (*table.IDs, error) {
	if path == "" {
		return table.Default(), nil
	}
	log.Debug().Str("path", path).Msg("Loading id table.")
	return table.Load(fs, path)
}
