package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/sandbox"
)

func newWorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    sandbox.WorkerCommandName,
		Short:  "Run one sandboxed parse over stdin (internal)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sandbox.RunWorker(os.Stdin, os.Stdout)
		},
	}

	return cmd
}
