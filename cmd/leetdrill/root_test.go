package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbar/leetdrill/internal/problem"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "concatenation-of-array")
	assert.Contains(t, out, "two-sum")
	assert.Contains(t, out, "Two Sum")
}

func TestRunAll(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "[PASS] two-sum case 1")
	assert.Contains(t, out, "two-sum: passed 8/8")
	assert.Contains(t, out, "concatenation-of-array: passed 5/5")
	assert.NotContains(t, out, "[FAIL]")
}

func TestRunUnknownProblem(t *testing.T) {
	_, err := execute(t, "run", "reverse-linked-list")
	assert.True(t, errors.Is(err, problem.ErrUnknownProblem))
}

func TestRunExternalCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte(`case,input,expected
1,"nums=[2,7,11,15], target=9","[0,1]"
2,"nums=[1,2], target=3","[1,0]"
`), 0644))

	out, err := execute(t, "run", "two-sum", "--cases", path)
	assert.True(t, errors.Is(err, errCasesFailed))
	assert.Contains(t, out, "[PASS] two-sum case 1")
	assert.Contains(t, out, "[FAIL] two-sum case 2")
	assert.Contains(t, out, "two-sum: passed 1/2")
}

func TestRunCasesNeedsOneSlug(t *testing.T) {
	_, err := execute(t, "run", "--cases", "x.csv")
	assert.ErrorContains(t, err, "exactly one problem slug")
}

func TestSolve(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"solve", "two-sum", "--input", "nums=[2,7,11,15], target=9"}, "[0,1]\n"},
		{[]string{"solve", "two-sum", "--input", "nums=[1,2,3,4], target=8"}, "[]\n"},
		{[]string{"solve", "concatenation-of-array", "--input", "nums=[1,2,3,4]"}, "[1,2,3,4,1,2,3,4]\n"},
		{[]string{"solve", "concatenation-of-array", "--input", "nums=[]"}, "[]\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestSolveBadInput(t *testing.T) {
	_, err := execute(t, "solve", "two-sum", "--input", "nums=[1,2")
	assert.ErrorContains(t, err, "parse --input")

	_, err = execute(t, "solve", "two-sum", "--input", "nums=[1,2]")
	assert.True(t, errors.Is(err, problem.ErrMissingArg))
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "list"})
	assert.ErrorContains(t, cmd.Execute(), "invalid logging.level")
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[]", formatInts(nil))
	assert.Equal(t, "[-1,0,2]", formatInts([]int{-1, 0, 2}))
}
