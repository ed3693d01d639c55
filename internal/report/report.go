package report

import (
	"fmt"
	"sort"

	"size-explorer/internal/tree"
)

type Exclusion struct {
	ID     string
	Label  string
	SizeMB float64
}

type SavingsResult struct {
	Totals   tree.Totals
	Excluded []Exclusion
}

func (r *SavingsResult) HasChanges() bool {
	return len(r.Excluded) > 0
}

// Savings lists every unchecked subtree whose ancestors are all still
// checked. Their report sizes add up to the total reduction.
func Savings(f *tree.Forest) *SavingsResult {
	result := &SavingsResult{
		Totals:   f.Totals(),
		Excluded: make([]Exclusion, 0),
	}

	f.Walk(func(n *tree.Node) bool {
		if n.Checked() {
			return true
		}
		result.Excluded = append(result.Excluded, Exclusion{
			ID:     n.ID(),
			Label:  n.Label(),
			SizeMB: n.FullSize(),
		})
		// Nested exclusions are already part of this one
		return false
	})

	// Sort for deterministic output
	sort.Slice(result.Excluded, func(i, j int) bool {
		a, b := result.Excluded[i], result.Excluded[j]
		if a.SizeMB != b.SizeMB {
			return a.SizeMB > b.SizeMB
		}
		return a.ID < b.ID
	})

	return result
}

func FormatReport(result *SavingsResult) string {
	report := result.Totals.OriginalText() + "\n"
	report += result.Totals.CurrentText() + "\n"
	report += result.Totals.ReductionText() + "\n"

	if !result.HasChanges() {
		return report + "\nNothing excluded.\n"
	}

	report += fmt.Sprintf("\nEXCLUDED (%d):\n", len(result.Excluded))
	for _, ex := range result.Excluded {
		report += fmt.Sprintf("  - %s (%s)\n", ex.ID, tree.FormatSize(ex.SizeMB))
	}

	return report
}
