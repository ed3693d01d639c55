package tree

// SetChecked includes or excludes n's subtree from the totals and the chart.
// Descendants are enabled or disabled with it, chart visibility is derived
// again for the subtree, and every ancestor is told its size changed.
func (f *Forest) SetChecked(n *Node, v bool) {
	if n.checked == v {
		return
	}
	n.checked = v
	f.notify(n, PropChecked)

	for _, c := range n.children {
		setEnabled(c, v, f)
	}
	f.refreshChart(n)
	f.sizeChanged(n)
}

// SetExpanded switches n between one aggregate chart slice (collapsed) and
// one slice per eligible child (expanded).
func (f *Forest) SetExpanded(n *Node, v bool) {
	if n.expanded == v {
		return
	}
	n.expanded = v
	f.notify(n, PropExpanded)
	f.refreshChart(n)
}

// SetVisible shows or hides n in the tree display. Hidden nodes never occupy
// a chart slice. Sizes count checked state only, but ancestors are still
// notified so labels get redrawn.
func (f *Forest) SetVisible(n *Node, v bool) {
	if n.visible == v {
		return
	}
	n.visible = v
	f.notify(n, PropVisible)
	f.refreshChart(n)
	f.sizeChanged(n)
}

// SetEnabled sets enabled on n and every descendant. Chart visibility is left
// to the caller.
func (f *Forest) SetEnabled(n *Node, v bool) {
	setEnabled(n, v, f)
}

// SetSelected moves the UI cursor flag. It has no cascade.
func (f *Forest) SetSelected(n *Node, v bool) {
	if n.selected == v {
		return
	}
	n.selected = v
	f.notify(n, PropSelected)
}

// Select makes n the only selected node. A nil n clears the selection.
func (f *Forest) Select(n *Node) {
	if prev := f.Selection(); prev != nil && prev != n {
		f.SetSelected(prev, false)
	}
	if n != nil {
		f.SetSelected(n, true)
	}
}

// Selection returns the selected node, or nil.
func (f *Forest) Selection() *Node {
	var sel *Node
	f.Walk(func(n *Node) bool {
		if n.selected {
			sel = n
		}
		return sel == nil
	})
	return sel
}

// FilterBySize hides every node smaller than minMB. A negative value clears
// the filter. Children are visited before their parent.
func (f *Forest) FilterBySize(minMB float64) {
	for _, r := range f.roots {
		f.filter(r, minMB)
	}
}

func (f *Forest) filter(n *Node, minMB float64) {
	for _, c := range n.children {
		f.filter(c, minMB)
	}
	f.SetVisible(n, minMB < 0 || n.Size() >= minMB)
}

// ExpandToDepth expands every directory above the given depth, roots first.
func (f *Forest) ExpandToDepth(depth int) {
	f.Walk(func(n *Node) bool {
		if n.Depth() >= depth {
			return false
		}
		if !n.IsLeaf() {
			f.SetExpanded(n, true)
		}
		return true
	})
}

func setEnabled(n *Node, v bool, f *Forest) {
	if n.enabled != v {
		n.enabled = v
		if f != nil {
			f.notify(n, PropEnabled)
		}
	}
	for _, c := range n.children {
		setEnabled(c, v, f)
	}
}

func (f *Forest) setChartVisible(n *Node, v bool) {
	if n.chartVisible == v {
		return
	}
	n.chartVisible = v
	f.notify(n, PropChartVisible)
}

// refreshChart derives chart visibility for n and its whole subtree: a node
// is a slice when it is enabled, visible, checked and collapsed, and every
// ancestor is visible, checked and expanded.
func (f *Forest) refreshChart(n *Node) {
	f.setChartVisible(n, n.chartEligible())
	for _, c := range n.children {
		f.refreshChart(c)
	}
}

func (f *Forest) sizeChanged(n *Node) {
	for a := n.parent; a != nil; a = a.parent {
		f.notify(a, PropSize)
	}
}
