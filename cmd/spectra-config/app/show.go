package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spectra-lab/spectra/pkg/config"
)

var showCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show the effective configuration",
	Long: `Show prints the effective configuration: the built-in defaults with
the given file and environment overrides layered on top. Without a file
argument the defaults plus environment overrides are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}

		cfg, err := config.Load(loadOptions(path, strict)...)
		if err != nil {
			return err
		}

		switch output {
		case "yaml":
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		case "json":
			return renderJSON(cmd, cfg)
		case "table":
			return renderTable(cmd, cfg)
		default:
			return fmt.Errorf("unknown output format %q", output)
		}
	},
}

// renderJSON prints the configuration as JSON. The configuration only
// carries yaml tags, so it goes through its yaml representation to keep
// the field names consistent between the two formats.
func renderJSON(cmd *cobra.Command, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// renderTable prints a summary of the connection-level settings.
func renderTable(cmd *cobra.Command, cfg *config.Config) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Options(
		tablewriter.WithHeader([]string{"Setting", "Value"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
	)

	rows := [][]string{
		{"services.api_host", cfg.Services.APIHost},
		{"services.api_port", strconv.Itoa(cfg.Services.APIPort)},
		{"services.api_base_path", cfg.Services.APIBasePath},
		{"meta.deployment", cfg.Meta.Deployment},
		{"meta.deployment_url", cfg.Meta.DeploymentURL},
		{"broker.host", cfg.Broker.Host},
		{"search.host", cfg.Search.Host},
		{"search.port", strconv.Itoa(cfg.Search.Port)},
		{"search.entries_index", cfg.Search.EntriesIndex},
		{"mongo.host", cfg.Mongo.Host},
		{"mongo.port", strconv.Itoa(cfg.Mongo.Port)},
		{"mongo.db_name", cfg.Mongo.DBName},
		{"workers.routing", cfg.Workers.Routing},
		{"ui.unit_systems.selected", cfg.UI.UnitSystems.Selected},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func init() {
	showCmd.Flags().Bool("strict", false, "Treat unknown configuration keys as errors")
	showCmd.Flags().StringP("output", "o", "yaml", "Output format (yaml, json, table)")
}
