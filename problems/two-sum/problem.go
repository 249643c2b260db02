// Package twosum is LeetCode 1: indices of the two numbers that add up to a target.
package twosum

import (
	_ "embed"

	"github.com/brettbar/leetdrill/internal/problem"
)

//go:embed tests.csv
var cases []byte

var Problem = problem.Problem{
	Slug:  "two-sum",
	Title: "Two Sum",
	Cases: cases,
	Solve: solve,
}

func solve(args problem.Args) ([]int, error) {
	nums, err := args.Ints("nums")
	if err != nil {
		return nil, err
	}
	target, err := args.Int("target")
	if err != nil {
		return nil, err
	}
	return FindPairIndices(nums, target), nil
}
