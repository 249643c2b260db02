package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbar/leetdrill/internal/casefile"
	"github.com/brettbar/leetdrill/internal/problem"
)

type recorder struct {
	results []Result
	summary *Summary
}

func (r *recorder) Case(_ string, res Result) { r.results = append(r.results, res) }
func (r *recorder) Summary(s Summary)         { r.summary = &s }

// reverse is a stand-in solution that returns nums backwards.
var reverse = problem.Problem{
	Slug: "reverse",
	Solve: func(args problem.Args) ([]int, error) {
		nums, err := args.Ints("nums")
		if err != nil {
			return nil, err
		}
		out := make([]int, 0, len(nums))
		for i := len(nums) - 1; i >= 0; i-- {
			out = append(out, nums[i])
		}
		return out, nil
	},
	Cases: []byte(`case,input,expected
1,"nums=[1,2,3]","[3,2,1]"
2,nums=[],[]
3,"nums=[1,2]","[1,2]"
4,vals=[1],[1]
5,"nums=[1",[]
`),
}

func TestRunEmbedded(t *testing.T) {
	rec := &recorder{}
	sum, err := New(rec, nil).RunEmbedded(context.Background(), reverse)
	require.NoError(t, err)

	assert.Equal(t, Summary{Problem: "reverse", Passed: 2, Total: 5}, sum)
	assert.False(t, sum.OK())
	require.NotNil(t, rec.summary)
	assert.Equal(t, sum, *rec.summary)

	require.Len(t, rec.results, 5)
	assert.True(t, rec.results[0].Passed)
	assert.Equal(t, 1, rec.results[0].Index)
	assert.Equal(t, []int{3, 2, 1}, rec.results[0].Got)

	// empty result against "[]"
	assert.True(t, rec.results[1].Passed)

	assert.False(t, rec.results[2].Passed)
	assert.NoError(t, rec.results[2].Err)
	assert.Equal(t, []int{2, 1}, rec.results[2].Got)

	assert.True(t, errors.Is(rec.results[3].Err, problem.ErrMissingArg))
	assert.False(t, rec.results[3].Passed)

	assert.ErrorContains(t, rec.results[4].Err, "case 5: parse input")
	assert.Nil(t, rec.results[4].Got)
}

func TestRunAllPass(t *testing.T) {
	cases, err := casefile.Parse([]byte("case,input,expected\n1,\"nums=[4,5]\",\"[5,4]\"\n"))
	require.NoError(t, err)

	sum, err := New(nil, nil).Run(context.Background(), reverse, cases)
	require.NoError(t, err)
	assert.True(t, sum.OK())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	_, err := New(rec, nil).RunEmbedded(ctx, reverse)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, rec.results)
	assert.Nil(t, rec.summary)
}

func TestRunEmbeddedBadFile(t *testing.T) {
	p := reverse
	p.Cases = []byte("case,input,expected\n")
	_, err := New(nil, nil).RunEmbedded(context.Background(), p)
	assert.True(t, errors.Is(err, casefile.ErrNoCases))
}
