// Package casefile reads the tests.csv files kept next to each problem.
//
// A file has a header row followed by one row per case:
//
//	case,input,expected
//	1,"nums=[2,7,11,15], target=9","[0,1]"
package casefile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brettbar/leetdrill/internal/problem"
)

var ErrNoCases = errors.New("no test rows")

// Case is one row of a case file. Err is set when the row could not be
// decoded; the rest of the file is still usable.
type Case struct {
	Label    string
	Input    string
	Args     problem.Args
	Expected []int
	Err      error
}

func ReadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func Parse(data []byte) ([]Case, error) {
	return Read(bytes.NewReader(data))
}

func Read(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	if len(records) <= 1 {
		return nil, ErrNoCases
	}

	cases := make([]Case, 0, len(records)-1)
	for _, row := range records[1:] {
		c := Case{Label: strings.TrimSpace(row[0]), Input: row[1]}
		if c.Args, err = ParseInput(row[1]); err != nil {
			c.Err = fmt.Errorf("case %s: parse input: %w", c.Label, err)
		} else if c.Expected, err = problem.ParseIntSlice(row[2]); err != nil {
			c.Err = fmt.Errorf("case %s: parse expected: %w", c.Label, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// ParseInput splits "nums=[2,7], target=9" into named arguments. Commas inside
// brackets belong to the value.
func ParseInput(s string) (problem.Args, error) {
	args := problem.Args{}
	if strings.TrimSpace(s) == "" {
		return args, nil
	}

	depth := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '[':
				depth++
				continue
			case ']':
				depth--
				if depth < 0 {
					return nil, fmt.Errorf("unbalanced ']' at offset %d", i)
				}
				continue
			case ',':
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}
		if err := addAssignment(args, s[start:i]); err != nil {
			return nil, err
		}
		start = i + 1
	}
	if depth != 0 {
		return nil, errors.New("unbalanced '['")
	}
	return args, nil
}

func addAssignment(args problem.Args, part string) error {
	name, value, ok := strings.Cut(part, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", strings.TrimSpace(part))
	}
	if _, dup := args[name]; dup {
		return fmt.Errorf("argument %s given twice", name)
	}
	args[name] = strings.TrimSpace(value)
	return nil
}
