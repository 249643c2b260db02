// Package problems lists every exercise in the repository.
package problems

import (
	"github.com/brettbar/leetdrill/internal/problem"
	concatenation "github.com/brettbar/leetdrill/problems/concatenation-of-array"
	twosum "github.com/brettbar/leetdrill/problems/two-sum"
)

// Registry returns a registry holding every problem.
func Registry() (*problem.Registry, error) {
	r := problem.NewRegistry()
	for _, p := range []problem.Problem{
		concatenation.Problem,
		twosum.Problem,
	} {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
