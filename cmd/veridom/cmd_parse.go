package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/markup"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var withTrace bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse markup and dump the document tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			if withTrace {
				result := markup.ParseWithTrace(input)
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode trace result: %w", err)
				}
				return nil
			}

			tree := markup.Parse(input)

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
			case "text":
				fmt.Print(tree)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().BoolVar(&withTrace, "trace", false, "include tokens and the execution trace")

	return cmd
}
