// Package problem describes an exercise that the runner can check: a slug, the
// recorded cases that ship with it and an adapter from named arguments to the
// reference solution.
package problem

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnknownProblem   = errors.New("unknown problem")
	ErrDuplicateProblem = errors.New("duplicate problem")
	ErrMissingArg       = errors.New("missing argument")
)

// SolveFunc decodes the arguments of one case and returns the solution's output.
type SolveFunc func(args Args) ([]int, error)

// Problem is a single exercise.
type Problem struct {
	Slug  string
	Title string
	// Cases holds the CSV case file embedded next to the solution.
	Cases []byte
	Solve SolveFunc
}

// Args maps argument names to their raw textual values, e.g. "nums" -> "[2,7]".
type Args map[string]string

// Ints decodes a bracketed integer list argument.
func (a Args) Ints(name string) ([]int, error) {
	raw, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingArg, name)
	}
	vals, err := ParseIntSlice(raw)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return vals, nil
}

// Int decodes a scalar integer argument.
func (a Args) Int(name string) (int, error) {
	raw, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingArg, name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}
	return n, nil
}

// ParseIntSlice parses "[1, 2, 3]" into a slice. "[]" and "" give an empty slice.
func ParseIntSlice(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	raw := strings.Split(s, ",")
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Registry indexes problems by slug.
type Registry struct {
	bySlug map[string]Problem
}

func NewRegistry() *Registry {
	return &Registry{bySlug: make(map[string]Problem)}
}

// Register adds p. Slugs must be unique and non-empty.
func (r *Registry) Register(p Problem) error {
	if p.Slug == "" {
		return errors.New("problem slug is empty")
	}
	if p.Solve == nil {
		return fmt.Errorf("problem %s: no solve func", p.Slug)
	}
	if _, ok := r.bySlug[p.Slug]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProblem, p.Slug)
	}
	r.bySlug[p.Slug] = p
	return nil
}

func (r *Registry) Lookup(slug string) (Problem, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %s", ErrUnknownProblem, slug)
	}
	return p, nil
}

// All returns every registered problem ordered by slug.
func (r *Registry) All() []Problem {
	out := make([]Problem, 0, len(r.bySlug))
	for _, p := range r.bySlug {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
