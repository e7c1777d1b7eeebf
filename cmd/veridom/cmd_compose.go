package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/compose"
)

func newComposeCmd() *cobra.Command {
	var asItems bool

	cmd := &cobra.Command{
		Use:   "compose [file]",
		Short: "Render a plain text outline as markup",
		Long: `Convert an outline into a document: lines starting with '#' become
header divs, lines starting with '-' become list items, everything
else becomes a paragraph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			items := compose.Outline(input)

			if asItems {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			fmt.Println(compose.Render(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asItems, "items", false, "emit the intermediate items as JSON instead of markup")

	return cmd
}
