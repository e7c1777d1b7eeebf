package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/markup"
)

func newTokenizeCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Tokenize markup and dump the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			tokens := markup.Tokenize(input)

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(tokens); err != nil {
					return fmt.Errorf("encode tokens: %w", err)
				}
			case "text":
				for _, token := range tokens {
					fmt.Println(token)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
