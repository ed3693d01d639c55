// Package chart projects the chart-visible nodes of a size tree onto pie
// slices.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"size-explorer/internal/hash"
	"size-explorer/internal/tree"
)

// palette assigns distinct colours to slices.
var palette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

type Slice struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	SizeMB  float64 `json:"size_mb"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// Slices returns one slice per chart-visible node, in tree display order.
// Percentages are relative to the sum of all slices.
func Slices(f *tree.Forest) []Slice {
	var out []Slice
	var total float64
	f.Walk(func(n *tree.Node) bool {
		if n.ChartVisible() {
			size := n.Size()
			total += size
			out = append(out, Slice{
				ID:     n.ID(),
				Name:   n.Name(),
				SizeMB: size,
				Color:  ColorFor(n.ID()),
			})
		}
		return true
	})

	if total > 0 {
		for i := range out {
			out[i].Percent = out[i].SizeMB / total * 100
		}
	}
	return out
}

// ColorFor picks a palette colour that stays the same for an id across runs.
func ColorFor(id string) string {
	return palette[hash.Key(id)%uint64(len(palette))]
}

// RenderLegend writes one coloured line per slice.
func RenderLegend(w io.Writer, slices []Slice) error {
	if len(slices) == 0 {
		_, err := fmt.Fprintln(w, lipgloss.NewStyle().Faint(true).Render("(chart is empty)"))
		return err
	}

	width := 0
	for _, s := range slices {
		width = max(width, lipgloss.Width(s.Name))
	}

	var b strings.Builder
	for _, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
		name := lipgloss.NewStyle().Width(width).Render(s.Name)
		fmt.Fprintf(&b, "%s %s  %10s  %5.1f%%\n", swatch, name, tree.FormatSize(s.SizeMB), s.Percent)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
