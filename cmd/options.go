package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/pkg/parser"
)

// optionFlags maps Options keys (their mapstructure names) to flag names.
var optionFlags = map[string]string{
	"in_dir":          "input-directory",
	"schema":          "schema",
	"out_dir":         "output-directory",
	"tag_key":         "tag",
	"default_package": "package",
	"file_suffix":     "file-suffix",
	"manifest":        "manifest",
	"dry_run":         "dry-run",
}

func addOptionFlags(c *cobra.Command) {
	c.Flags().StringP("input-directory", "i", ".", "Go package directory to scan for tagged structs")
	c.Flags().StringP("schema", "s", "", "YAML schema describing the source types; replaces scanning --input-directory")
	c.Flags().StringP("output-directory", "o", "", "directory to write companions to (defaults to the input directory)")
	c.Flags().String("tag", parser.DefaultTagKey, "struct tag key that marks a field")
	c.Flags().String("package", "", "package clause for types without a namespace (defaults to the output directory's package)")
	c.Flags().String("file-suffix", parser.DefaultFileSuffix, "suffix appended to the snake-cased companion name")
	c.Flags().String("manifest", "", "YAML manifest recording generated files")
}

// loadOptions binds c's flags into viper and decodes the merged flag, config
// file and environment values. Binding happens per command because generate
// and check share flag names.
func loadOptions(c *cobra.Command) (*parser.Options, error) {
	for key, name := range optionFlags {
		f := c.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	opts := parser.NewOptions()
	if err := viper.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	opts.Normalize()
	slog.Debug("options", "options", opts)
	return opts, nil
}

func newSink() *diag.Sink {
	return diag.NewSink(slog.Default())
}
