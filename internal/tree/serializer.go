package tree

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata describes the report an export was built from.
type Metadata struct {
	Source      string
	Digest      string
	Fingerprint string
}

type SerializedNode struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	SelfSize     float64           `json:"self_size"`
	Size         float64           `json:"size"`
	Label        string            `json:"label"`
	Checked      bool              `json:"checked"`
	Expanded     bool              `json:"expanded"`
	Visible      bool              `json:"visible"`
	Enabled      bool              `json:"enabled"`
	ChartVisible bool              `json:"chart_visible"`
	Selected     bool              `json:"selected,omitempty"`
	Children     []*SerializedNode `json:"children,omitempty"`
}

type SerializedForest struct {
	Generator    string            `json:"generator"`
	Created      time.Time         `json:"created"`
	Source       string            `json:"source"`
	Digest       string            `json:"digest,omitempty"`
	Fingerprint  string            `json:"fingerprint,omitempty"`
	OriginalSize string            `json:"original_size"`
	CurrentSize  string            `json:"current_size"`
	Reduction    string            `json:"reduction"`
	Roots        []*SerializedNode `json:"roots"`
}

// Snapshot captures the current state of the forest.
func Snapshot(f *Forest, meta Metadata) *SerializedForest {
	totals := f.Totals()
	roots := make([]*SerializedNode, 0, len(f.roots))
	for _, r := range f.roots {
		roots = append(roots, serializeNode(r))
	}

	return &SerializedForest{
		Generator:    "size-explorer",
		Created:      time.Now(),
		Source:       meta.Source,
		Digest:       meta.Digest,
		Fingerprint:  meta.Fingerprint,
		OriginalSize: FormatSize(totals.Original),
		CurrentSize:  FormatSize(totals.Current),
		Reduction:    FormatSize(totals.Reduction),
		Roots:        roots,
	}
}

func serializeNode(n *Node) *SerializedNode {
	s := &SerializedNode{
		ID:           n.id,
		Name:         n.name,
		SelfSize:     n.selfSize,
		Size:         n.Size(),
		Label:        n.Label(),
		Checked:      n.checked,
		Expanded:     n.expanded,
		Visible:      n.visible,
		Enabled:      n.enabled,
		ChartVisible: n.chartVisible,
		Selected:     n.selected,
	}
	for _, c := range n.children {
		s.Children = append(s.Children, serializeNode(c))
	}
	return s
}

func Save(f *Forest, meta Metadata, path string) error {
	data, err := json.MarshalIndent(Snapshot(f, meta), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func Load(path string) (*SerializedForest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var serialized SerializedForest
	if err := json.Unmarshal(data, &serialized); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}

	return &serialized, nil
}
