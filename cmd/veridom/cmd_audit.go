package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/markup"
	"github.com/dhamidi/veridom/verify"
)

func newAuditCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit [file]",
		Short: "Check a document for invalid element nesting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			report := verify.Audit(markup.Parse(input))

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if len(report.Violations) == 0 {
				fmt.Println("No nesting violations found")
			} else {
				fmt.Printf("Violations: %d\n", len(report.Violations))
				for _, violation := range report.Violations {
					fmt.Printf("  %s\n", violation)
				}
			}
			fmt.Printf("\nScore: %d\nStatus: %s\n", report.Score, report.Status)

			if report.Status != "PASS" {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")

	return cmd
}
