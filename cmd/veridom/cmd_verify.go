package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/config"
	"github.com/dhamidi/veridom/markup"
	"github.com/dhamidi/veridom/verify"
)

func newVerifyCmd() *cobra.Command {
	var maxDepth int
	var maxNodes int
	var configPath string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a document tree against depth and node-count limits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-depth") && cfg.MaxDepth != nil {
				maxDepth = *cfg.MaxDepth
			}
			if !cmd.Flags().Changed("max-nodes") && cfg.MaxNodes != nil {
				maxNodes = *cfg.MaxNodes
			}

			input, err := readInput(args)
			if err != nil {
				return err
			}

			limits := verify.Limits{MaxDepth: maxDepth, MaxNodes: maxNodes}
			report := limits.Verify(markup.Parse(input))

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}

			if !report.Valid {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 100, "maximum allowed tree depth")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 1000, "maximum allowed node count")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a veridom.yml config file")

	return cmd
}

func loadConfig(path string) (config.FileConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadLocal(".")
	if err != nil {
		return cfg, fmt.Errorf("load local config: %w", err)
	}
	return cfg, nil
}
