package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cmmoran/reusablegen/pkg/action/check"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

func NewCheckCommand() *cobra.Command {
	// checkCmd represents the reusablegen check command
	var checkCmd = &cobra.Command{
		Use:          "check",
		Short:        "verify companions are up to date",
		Long:         "Render every companion and diff it against the file on disk; exits non-zero when any file is missing or stale",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions(c)
			if err != nil {
				return err
			}
			report, err := check.Check(c.Context(), opts, afero.NewOsFs(), newSink())
			if report != "" {
				fmt.Fprint(c.OutOrStdout(), report)
			}
			return err
		},
	}
	addOptionFlags(checkCmd)

	return checkCmd
}
