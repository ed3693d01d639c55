package tree

// Property names a node field whose change observers are told about.
type Property int

const (
	PropChecked Property = iota
	PropExpanded
	PropVisible
	PropEnabled
	PropChartVisible
	PropSelected
	PropSize
)

var propertyNames = [...]string{
	PropChecked:      "checked",
	PropExpanded:     "expanded",
	PropVisible:      "visible",
	PropEnabled:      "enabled",
	PropChartVisible: "chart_visible",
	PropSelected:     "selected",
	PropSize:         "size",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "unknown"
}

// Change is delivered to observers after a node property changed.
type Change struct {
	Node     *Node
	Property Property
}

// Observer receives changes synchronously, in the order they happen.
type Observer func(Change)

// Forest owns the roots of a size tree and every mutation on it. It is not
// safe for concurrent use.
type Forest struct {
	roots     []*Node
	byID      map[string]*Node
	original  float64
	observers []Observer
}

func (f *Forest) Roots() []*Node { return f.roots }

// Find returns the node with the given id, or nil.
func (f *Forest) Find(id string) *Node {
	return f.byID[id]
}

// Len returns the number of nodes.
func (f *Forest) Len() int {
	return len(f.byID)
}

// Walk visits every node depth-first in display order. Returning false from
// fn skips the node's children.
func (f *Forest) Walk(fn func(*Node) bool) {
	var walk func(*Node)
	walk = func(n *Node) {
		if !fn(n) {
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range f.roots {
		walk(r)
	}
}

// Observe registers fn for every subsequent change.
func (f *Forest) Observe(fn Observer) {
	f.observers = append(f.observers, fn)
}

func (f *Forest) notify(n *Node, p Property) {
	for _, fn := range f.observers {
		fn(Change{Node: n, Property: p})
	}
}

// Totals returns the original size fixed at build time, the current size of
// all checked roots, and the difference.
func (f *Forest) Totals() Totals {
	current := f.currentSize()
	return Totals{
		Original:  f.original,
		Current:   current,
		Reduction: f.original - current,
	}
}

func (f *Forest) currentSize() float64 {
	var size float64
	for _, r := range f.roots {
		if r.checked {
			size += r.Size()
		}
	}
	return size
}

func (f *Forest) reindex() {
	f.byID = make(map[string]*Node)
	f.Walk(func(n *Node) bool {
		f.byID[n.id] = n
		return true
	})
}
