package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pagesim "github.com/djdv/go-pagesim"
)

func run(t *testing.T, capacity int, policy pagesim.Policy, sequence []int) Result {
	t.Helper()
	sim, err := pagesim.New(capacity, policy, sequence)
	require.NoError(t, err)
	steps, summary, err := sim.Run()
	require.NoError(t, err)
	return Result{Steps: steps, Summary: summary, Policy: policy}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	result := run(t, 2, pagesim.LRU, []int{1, 2, 1, 3})
	require.Equal(t,
		"Step 1: Page 1 caused a miss. A page fault occurred because the page was not found in memory.",
		Explain(result.Policy, result.Steps[0]))
	require.Equal(t,
		"Step 3: Page 1 was a hit. No page fault, the page was already in memory.",
		Explain(result.Policy, result.Steps[2]))
	require.Equal(t,
		"Step 4: Page 3 caused a miss. A page fault occurred because the page was not found in memory."+
			" Page 2 was the least recently used and was evicted.",
		Explain(result.Policy, result.Steps[3]))
}

func TestExplain_Reasons(t *testing.T) {
	t.Parallel()

	for policy, reason := range map[pagesim.Policy]string{
		pagesim.FIFO:    "was evicted using FIFO policy to make space.",
		pagesim.LRU:     "was the least recently used and was evicted.",
		pagesim.MRU:     "was the most recently used and was evicted.",
		pagesim.Optimal: "was predicted to be used farthest in the future and was evicted.",
	} {
		result := run(t, 1, policy, []int{1, 2})
		require.True(t, strings.HasSuffix(Explain(policy, result.Steps[1]), "Page 1 "+reason), policy.String())
	}
}

func TestNarrate(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		result = run(t, 3, pagesim.FIFO, []int{1, 2, 1})
	)
	require.NoError(t, Narrate(&buf, result.Policy, result.Steps))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[2], "Step 3: Page 1 was a hit."))
}

func TestSummary(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		result = run(t, 3, pagesim.FIFO, []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3})
	)
	require.NoError(t, Summary(&buf, result.Summary))
	require.Equal(t,
		"Page Faults: 8\nTotal Pages: 10\nHit Ratio: 0.20\nFinal Frames: 2 5 3\n",
		buf.String())
}

func TestSteps(t *testing.T) {
	t.Parallel()

	var (
		buf    bytes.Buffer
		result = run(t, 2, pagesim.FIFO, []int{1, 2, 3})
	)
	Steps(&buf, 2, result.Steps)
	out := buf.String()
	for _, want := range []string{"Step", "Evicted", "F0", "F1", "MISS"} {
		require.Contains(t, out, want)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, separator, one row per step
	require.Len(t, lines, 2+len(result.Steps))
	require.Regexp(t, `3\s*\|\s*3\s*\|\s*MISS\s*\|\s*1\s*\|\s*2\s*\|\s*3`, lines[len(lines)-1])
}

func TestCompare(t *testing.T) {
	t.Parallel()

	var (
		buf      bytes.Buffer
		sequence = []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}
		results  []Result
	)
	for _, policy := range pagesim.Policies() {
		results = append(results, run(t, 3, policy, sequence))
	}
	Compare(&buf, results)
	out := buf.String()
	for _, policy := range pagesim.Policies() {
		require.Contains(t, out, policy.String())
	}
	require.Regexp(t, `Optimal\s*\|\s*7\s*\|\s*6\s*\|\s*0\.46`, out)
}
