// Package report renders simulation steps and summaries as text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	pagesim "github.com/djdv/go-pagesim"
)

// Result is the outcome of one policy over a sequence.
type Result struct {
	Steps   []pagesim.Step[int]
	Summary pagesim.Summary[int]
	Policy  pagesim.Policy
}

// Explain describes a step the way a person would narrate it.
func Explain(policy pagesim.Policy, step pagesim.Step[int]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d: Page %d", step.Index+1, step.Page)
	if !step.Fault {
		b.WriteString(" was a hit. No page fault, the page was already in memory.")
		return b.String()
	}
	b.WriteString(" caused a miss. A page fault occurred because the page was not found in memory.")
	if victim, ok := step.Evictee(); ok {
		fmt.Fprintf(&b, " Page %d %s", victim, evictionReason(policy))
	}
	return b.String()
}

func evictionReason(policy pagesim.Policy) string {
	switch policy {
	case pagesim.FIFO:
		return "was evicted using FIFO policy to make space."
	case pagesim.LRU:
		return "was the least recently used and was evicted."
	case pagesim.MRU:
		return "was the most recently used and was evicted."
	case pagesim.Optimal:
		return "was predicted to be used farthest in the future and was evicted."
	default:
		return "was evicted."
	}
}

// Steps writes a frame-by-frame table of the steps,
// with one row per reference and one column per frame.
func Steps(w io.Writer, capacity int, steps []pagesim.Step[int]) {
	header := []string{"Step", "Page", "Result", "Evicted"}
	for frame := range capacity {
		header = append(header, "F"+strconv.Itoa(frame))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, step := range steps {
		row := []string{
			strconv.Itoa(step.Index + 1),
			strconv.Itoa(step.Page),
			status(step),
			"-",
		}
		if victim, ok := step.Evictee(); ok {
			row[3] = strconv.Itoa(victim)
		}
		for frame := range capacity {
			cell := "-"
			if frame < len(step.Residents) {
				cell = strconv.Itoa(step.Residents[frame])
			}
			row = append(row, cell)
		}
		table.Append(row)
	}
	table.Render()
}

func status(step pagesim.Step[int]) string {
	if step.Fault {
		return "MISS"
	}
	return "HIT"
}

// Narrate writes one [Explain] line per step.
func Narrate(w io.Writer, policy pagesim.Policy, steps []pagesim.Step[int]) error {
	for _, step := range steps {
		if _, err := fmt.Fprintln(w, Explain(policy, step)); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the final results of a run.
func Summary(w io.Writer, summary pagesim.Summary[int]) error {
	frames := make([]string, len(summary.Residents))
	for i, page := range summary.Residents {
		frames[i] = strconv.Itoa(page)
	}
	_, err := fmt.Fprintf(w,
		"Page Faults: %d\nTotal Pages: %d\nHit Ratio: %.2f\nFinal Frames: %s\n",
		summary.Faults, summary.Steps, summary.HitRatio, strings.Join(frames, " "),
	)
	return err
}

// Compare writes a table with one row per policy.
func Compare(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Faults", "Hits", "Hit Ratio", "Final Frames"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, result := range results {
		frames := make([]string, len(result.Summary.Residents))
		for i, page := range result.Summary.Residents {
			frames[i] = strconv.Itoa(page)
		}
		table.Append([]string{
			result.Policy.String(),
			strconv.Itoa(result.Summary.Faults),
			strconv.Itoa(result.Summary.Hits()),
			fmt.Sprintf("%0.2f", result.Summary.HitRatio),
			strings.Join(frames, " "),
		})
	}
	table.Render()
}
