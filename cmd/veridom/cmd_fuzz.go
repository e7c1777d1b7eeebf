package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/veridom/fuzz"
	"github.com/dhamidi/veridom/markup"
	"github.com/dhamidi/veridom/sandbox"
	"github.com/dhamidi/veridom/verify"
)

func newFuzzCmd() *cobra.Command {
	var iterations int
	var complexity int
	var seed int64
	var timeout time.Duration
	var configPath string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Stress the parser with randomized malformed markup",
		Long: `Generate tag-balanced but nesting-hostile markup and feed it through
the sandboxed parser and the nesting auditor, reporting violations,
timeouts and worker failures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("iterations") && cfg.Iterations != nil {
				iterations = *cfg.Iterations
			}
			if !cmd.Flags().Changed("complexity") && cfg.Complexity != nil {
				complexity = *cfg.Complexity
			}
			if !cmd.Flags().Changed("seed") && cfg.Seed != nil {
				seed = *cfg.Seed
			}
			if !cmd.Flags().Changed("timeout") && cfg.Timeout != nil {
				d, err := time.ParseDuration(*cfg.Timeout)
				if err != nil {
					return fmt.Errorf("config timeout: %w", err)
				}
				timeout = d
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			generator := fuzz.NewGenerator(seed)

			if printOnly {
				for i := 0; i < iterations; i++ {
					fmt.Println(generator.WildMarkup(complexity))
				}
				return nil
			}

			executor := sandbox.NewExecutor()
			totalViolations := 0
			failures := 0

			for i := 1; i <= iterations; i++ {
				input := generator.WildMarkup(complexity)

				result := executor.SafeParse(input, timeout)
				if !result.Success {
					failures++
					fmt.Printf("Iteration %d/%d: worker failure: %s\n", i, iterations, result.Err)
					continue
				}

				report := verify.Audit(markup.FromSerialized(result.Tree))
				totalViolations += len(report.Violations)

				if i%10 == 0 {
					fmt.Printf("Iteration %d/%d: %d violations so far, %d failures\n",
						i, iterations, totalViolations, failures)
				}
			}

			fmt.Printf("\nFuzz run complete: seed=%d iterations=%d violations=%d failures=%d\n",
				seed, iterations, totalViolations, failures)
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100, "number of generated inputs")
	cmd.Flags().IntVarP(&complexity, "complexity", "c", 10, "steps per generated input")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "per-parse sandbox timeout")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a veridom.yml config file")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print generated inputs instead of parsing them")

	return cmd
}
