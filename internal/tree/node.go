package tree

import "strings"

// Separator splits report paths into segments regardless of host platform.
const Separator = "/"

// Node is a file or synthesized directory in the size tree. State is only
// changed through the Forest setters so cascades always run.
type Node struct {
	id       string
	name     string
	selfSize float64
	children []*Node
	parent   *Node

	checked      bool
	expanded     bool
	visible      bool
	enabled      bool
	chartVisible bool
	selected     bool
}

func newNode(id, name string, selfSize float64) *Node {
	return &Node{
		id:       id,
		name:     name,
		selfSize: selfSize,
		checked:  true,
		visible:  true,
	}
}

// ID is the full path of the node. It is unique within a forest.
func (n *Node) ID() string { return n.id }

// Name is the display name; after pruning it may span several segments.
func (n *Node) Name() string { return n.name }

// SelfSize is the size in MB reported for this exact path.
func (n *Node) SelfSize() float64 { return n.selfSize }

// Children returns the sorted children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Parent returns nil for roots.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Checked() bool      { return n.checked }
func (n *Node) Expanded() bool     { return n.expanded }
func (n *Node) Visible() bool      { return n.visible }
func (n *Node) Enabled() bool      { return n.enabled }
func (n *Node) ChartVisible() bool { return n.chartVisible }
func (n *Node) Selected() bool     { return n.selected }

func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Size is the aggregate size in MB: the node's own size plus the size of
// every checked child.
func (n *Node) Size() float64 {
	size := n.selfSize
	for _, c := range n.children {
		if c.checked {
			size += c.Size()
		}
	}
	return size
}

// FullSize ignores checked state: it is the size the subtree had in the
// report.
func (n *Node) FullSize() float64 {
	size := n.selfSize
	for _, c := range n.children {
		size += c.FullSize()
	}
	return size
}

// Label combines the name and the formatted aggregate size.
func (n *Node) Label() string {
	return n.name + " – " + FormatSize(n.Size())
}

// Depth is 0 for roots.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// ancestorsOpen reports whether every ancestor is visible, checked and
// expanded, i.e. nothing above n folds it away.
func (n *Node) ancestorsOpen() bool {
	for p := n.parent; p != nil; p = p.parent {
		if !p.visible || !p.checked || !p.expanded {
			return false
		}
	}
	return true
}

func (n *Node) chartEligible() bool {
	return n.enabled && n.visible && n.checked && !n.expanded && n.ancestorsOpen()
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.Label())
	if !n.checked {
		b.WriteString(" [unchecked]")
	}
	return b.String()
}
