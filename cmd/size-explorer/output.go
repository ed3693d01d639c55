package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"size-explorer/internal/chart"
	"size-explorer/internal/report"
	"size-explorer/internal/session"
	"size-explorer/internal/tree"
)

var (
	faint    = lipgloss.NewStyle().Faint(true)
	bold     = lipgloss.NewStyle().Bold(true)
	selected = lipgloss.NewStyle().Reverse(true)
)

// printTree writes the visible nodes of f, one per line. Children of
// collapsed nodes are only printed when all is set.
func printTree(w io.Writer, f *tree.Forest, all bool) {
	f.Walk(func(n *tree.Node) bool {
		if !n.Visible() {
			return false
		}
		fmt.Fprintln(w, treeLine(n))
		return all || n.Expanded()
	})
}

func treeLine(n *tree.Node) string {
	box := "[x]"
	if !n.Checked() {
		box = "[ ]"
	}
	arrow := " "
	if !n.IsLeaf() {
		arrow = "▸"
		if n.Expanded() {
			arrow = "▾"
		}
	}

	label := n.Label()
	switch {
	case !n.Checked() || !n.Enabled():
		label = faint.Render(label)
	case n.ChartVisible():
		label = bold.Render(label)
	}
	if n.Selected() {
		label = selected.Render(label)
	}

	return fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", n.Depth()), box, arrow, label)
}

func printChart(w io.Writer, f *tree.Forest) error {
	return chart.RenderLegend(w, chart.Slices(f))
}

func printSummary(w io.Writer, f *tree.Forest) {
	fmt.Fprint(w, report.FormatReport(report.Savings(f)))
}

// export writes the forest as JSON. Without an explicit path it falls back
// to the configured output file, then to output/<fingerprint>.json.
func export(w io.Writer, ws *workspace, outputPath string) error {
	if outputPath == "" {
		outputPath = cfg.OutputFile
	}
	if outputPath == "" {
		name := ws.meta.Fingerprint
		if name == "" {
			name = "size-tree"
		}
		outputPath = filepath.Join("output", name+".json")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := tree.Save(ws.forest, ws.meta, outputPath); err != nil {
		return err
	}

	totals := ws.forest.Totals()
	fmt.Fprintf(w, "✓ Size tree exported to %s\n", outputPath)
	fmt.Fprintf(w, "  Nodes: %d\n", ws.forest.Len())
	fmt.Fprintf(w, "  %s\n", totals.CurrentText())
	return nil
}

// explore applies session commands from the script at scriptPath, or from
// in when no script is given, and prints the resulting tree, chart and
// summary.
func explore(ctx context.Context, in io.Reader, w io.Writer, ws *workspace, scriptPath string) error {
	if scriptPath != "" {
		file, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer file.Close()
		in = file
	}

	s := session.New(ws.forest, cfg.FilterPresets)
	applied, err := s.Run(ctx, in, w)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Applied %d command(s)\n\n", applied)

	printTree(w, ws.forest, showAll)
	fmt.Fprintln(w)
	if err := printChart(w, ws.forest); err != nil {
		return err
	}
	fmt.Fprintln(w)
	printSummary(w, ws.forest)
	return nil
}
