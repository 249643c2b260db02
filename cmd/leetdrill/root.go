package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brettbar/leetdrill/internal/casefile"
	"github.com/brettbar/leetdrill/internal/config"
	"github.com/brettbar/leetdrill/internal/logging"
	"github.com/brettbar/leetdrill/internal/problem"
	"github.com/brettbar/leetdrill/internal/report"
	"github.com/brettbar/leetdrill/internal/runner"
	"github.com/brettbar/leetdrill/problems"
)

var errCasesFailed = errors.New("some cases failed")

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *problem.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "leetdrill",
		Short: "Run array exercises against their recorded cases",
		Long: `leetdrill checks each exercise's reference solution against the
tests.csv file stored next to it and prints a PASS/FAIL line per case.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "leetdrill.yaml", "path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(a.listCmd(), a.runCmd(), a.solveCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Color = false
	}
	a.cfg = cfg

	if a.logger, err = logging.New(cfg.Logging, a.verbose); err != nil {
		return err
	}
	if a.registry, err = problems.Registry(); err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range a.registry.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", p.Slug, p.Title)
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	var casesPath string

	cmd := &cobra.Command{
		Use:   "run [slug...]",
		Short: "Run recorded cases for the given problems (all when none given)",
		Example: `  leetdrill run
  leetdrill run two-sum
  leetdrill run two-sum --cases ./my-cases.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if casesPath != "" && len(args) != 1 {
				return errors.New("--cases needs exactly one problem slug")
			}

			selected, err := a.selectProblems(args)
			if err != nil {
				return err
			}

			r := runner.New(report.NewTerminal(cmd.OutOrStdout(), a.cfg.Color), a.logger)
			failed := false
			for _, p := range selected {
				var sum runner.Summary
				if casesPath != "" {
					cases, err := casefile.ReadFile(casesPath)
					if err != nil {
						return fmt.Errorf("read %s: %w", casesPath, err)
					}
					sum, err = r.Run(cmd.Context(), p, cases)
					if err != nil {
						return err
					}
				} else {
					if sum, err = r.RunEmbedded(cmd.Context(), p); err != nil {
						return err
					}
				}
				if !sum.OK() {
					failed = true
				}
			}
			if failed {
				return errCasesFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&casesPath, "cases", "", "CSV case file to use instead of the embedded one")
	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "solve <slug>",
		Short:   "Call a problem's solution once and print the result",
		Example: `  leetdrill solve two-sum --input "nums=[2,7,11,15], target=9"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			parsed, err := casefile.ParseInput(input)
			if err != nil {
				return fmt.Errorf("parse --input: %w", err)
			}
			got, err := p.Solve(parsed)
			if err != nil {
				return err
			}
			a.logger.Debug("solved", zap.String("problem", p.Slug), zap.String("input", input), zap.Ints("result", got))
			fmt.Fprintln(cmd.OutOrStdout(), formatInts(got))
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", `arguments, e.g. "nums=[2,7,11,15], target=9"`)
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (a *app) selectProblems(slugs []string) ([]problem.Problem, error) {
	if len(slugs) == 0 {
		return a.registry.All(), nil
	}
	out := make([]problem.Problem, 0, len(slugs))
	for _, s := range slugs {
		p, err := a.registry.Lookup(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// formatInts renders nums the way case files write them: [0,1].
func formatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
