package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cmmoran/reusablegen/pkg/action/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the reusablegen generate command
	var generateCmd = &cobra.Command{
		Use:          "generate",
		Short:        "generate companions",
		Long:         "Write a Reusable<Name> companion file for every tagged struct or schema type",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions(c)
			if err != nil {
				return err
			}
			generate.Version = version
			_, err = generate.Generate(c.Context(), opts, afero.NewOsFs(), newSink())
			return err
		},
	}
	addOptionFlags(generateCmd)
	generateCmd.Flags().BoolP("dry-run", "n", false, "render companions without writing them")

	return generateCmd
}
