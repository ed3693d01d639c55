package tree

import "fmt"

// FormatSize renders a size in MB, switching to kb below 1 MB.
func FormatSize(mb float64) string {
	if mb < 1 {
		return fmt.Sprintf("%.1f kb", mb*1000)
	}
	return fmt.Sprintf("%.1f mb", mb)
}

// Totals are the aggregate sizes across all roots, in MB.
type Totals struct {
	Original  float64
	Current   float64
	Reduction float64
}

func (t Totals) OriginalText() string {
	return "Original Size: " + FormatSize(t.Original)
}

func (t Totals) CurrentText() string {
	return "Current Size: " + FormatSize(t.Current)
}

func (t Totals) ReductionText() string {
	return "Total Reduction: " + FormatSize(t.Reduction)
}
