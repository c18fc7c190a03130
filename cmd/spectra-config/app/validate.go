package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spectra-lab/spectra/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a configuration file",
	Long: `Validate loads the given configuration file over the built-in
defaults, applies environment overrides, and reports whether the
effective configuration is valid. With --strict, unknown keys in the
file are errors instead of warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}

		opts := loadOptions(args[0], strict)
		if _, err := config.Load(opts...); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: configuration is valid\n", args[0])
		return nil
	},
}

// loadOptions assembles the load options shared by the subcommands.
func loadOptions(path string, strict bool) []config.Option {
	opts := []config.Option{}
	if path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}
	if strict {
		opts = append(opts, config.WithStrict())
	}
	return opts
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat unknown configuration keys as errors")
}
