package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/markup"
)

const (
	colorTag     = "\x1b[94m"
	colorAttrKey = "\x1b[92m"
	colorAttrVal = "\x1b[93m"
	colorReset   = "\x1b[0m"
)

func newInspectCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show a colorized, indented view of the parsed tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			inspectNode(markup.Parse(input), 0, !noColor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}

func inspectNode(node *markup.TreeNode, indent int, color bool) {
	tag, key, val, reset := colorTag, colorAttrKey, colorAttrVal, colorReset
	if !color {
		tag, key, val, reset = "", "", "", ""
	}

	prefix := strings.Repeat("  ", indent)

	line := prefix + tag + "<" + node.Name
	for _, name := range node.SortedAttributeNames() {
		line += " " + key + name + "=" + val + `"` + node.Attributes[name] + `"`
	}
	line += tag + ">" + reset
	fmt.Println(line)

	if text := strings.TrimSpace(node.TextContent); text != "" {
		fmt.Println(prefix + "  " + text)
	}

	for _, child := range node.Children {
		inspectNode(child, indent+1, color)
	}
}
