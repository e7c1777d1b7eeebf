package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "veridom",
		Short: "A verified markup parsing toolbox",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newFuzzCmd())
	rootCmd.AddCommand(newComposeCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newWorkerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
