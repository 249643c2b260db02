// Package runner checks a problem's solution against its recorded cases.
package runner

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"

	"github.com/brettbar/leetdrill/internal/casefile"
	"github.com/brettbar/leetdrill/internal/problem"
)

// Result is the outcome of a single case.
type Result struct {
	Index    int // 1-based
	Label    string
	Input    string
	Got      []int
	Expected []int
	Err      error
	Passed   bool
}

type Summary struct {
	Problem string
	Passed  int
	Total   int
}

func (s Summary) OK() bool { return s.Passed == s.Total }

// Reporter receives plain results as the run progresses.
type Reporter interface {
	Case(problem string, r Result)
	Summary(s Summary)
}

// nil and empty slices compare equal.
var equateEmpty = cmpopts.EquateEmpty()

type Runner struct {
	logger   *zap.Logger
	reporter Reporter
}

func New(reporter Reporter, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, reporter: reporter}
}

// Run evaluates every case in order. A case that cannot be decoded or whose
// solve func errors counts as failed; the run goes on. Run only returns an
// error when ctx is done before all cases ran.
func (r *Runner) Run(ctx context.Context, p problem.Problem, cases []casefile.Case) (Summary, error) {
	sum := Summary{Problem: p.Slug, Total: len(cases)}
	log := r.logger.With(zap.String("problem", p.Slug))

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("run %s: %w", p.Slug, err)
		}

		res := Result{Index: i + 1, Label: c.Label, Input: c.Input, Expected: c.Expected, Err: c.Err}
		if res.Err == nil {
			res.Got, res.Err = p.Solve(c.Args)
		}
		if res.Err == nil {
			if diff := cmp.Diff(c.Expected, res.Got, equateEmpty); diff != "" {
				log.Debug("case mismatch", zap.String("case", c.Label), zap.String("diff", diff))
			} else {
				res.Passed = true
			}
		} else {
			log.Warn("case errored", zap.String("case", c.Label), zap.Error(res.Err))
		}

		if res.Passed {
			sum.Passed++
		}
		if r.reporter != nil {
			r.reporter.Case(p.Slug, res)
		}
	}

	log.Debug("run finished", zap.Int("passed", sum.Passed), zap.Int("total", sum.Total))
	if r.reporter != nil {
		r.reporter.Summary(sum)
	}
	return sum, nil
}

// RunEmbedded runs the cases shipped with p.
func (r *Runner) RunEmbedded(ctx context.Context, p problem.Problem) (Summary, error) {
	cases, err := casefile.Parse(p.Cases)
	if err != nil {
		return Summary{Problem: p.Slug}, fmt.Errorf("%s cases: %w", p.Slug, err)
	}
	return r.Run(ctx, p, cases)
}
