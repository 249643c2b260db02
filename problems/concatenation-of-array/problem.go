// Package concatenation is LeetCode 1929: an array followed by a copy of itself.
package concatenation

import (
	_ "embed"

	"github.com/brettbar/leetdrill/internal/problem"
)

//go:embed tests.csv
var cases []byte

var Problem = problem.Problem{
	Slug:  "concatenation-of-array",
	Title: "Concatenation of Array",
	Cases: cases,
	Solve: solve,
}

func solve(args problem.Args) ([]int, error) {
	nums, err := args.Ints("nums")
	if err != nil {
		return nil, err
	}
	return Concatenate(nums), nil
}
