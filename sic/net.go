// Package sic evaluates programs written in the Symmetric Interaction
// Calculus: it parses a surface term, translates it into an interaction
// combinator net, reduces the net to normal form, and decodes the result
// back into a surface term.
package sic

// Node kinds. Stored in the fourth cell of a node (port 3 is unused for
// links and holds this value instead).
const (
	ERA uint32 = 0 // erase: a "set" value when read, a garbage sink when rewritten.
	CON uint32 = 1 // lambda at port 0 / application at port 2.
	FAN uint32 = 2 // pair at port 0 / duplication at ports 1,2.

	rootKind uint32 = 4 // sentinel, outside {ERA,CON,FAN}; excludes node 0 from active pairs.
)

// Link builds the link naming port p of node.
func Link(node, p uint32) uint32 {
	return (node << 2) | p
}

// Addr returns the node index a link points at.
func Addr(l uint32) uint32 {
	return l >> 2
}

// Port returns the port number (0, 1 or 2) a link points at.
func Port(l uint32) uint32 {
	return l & 3
}

// Net is a pointer-free interaction net: a flat buffer of cells grouped
// four per node (three port links plus a kind), and a free-list of
// reclaimed node indices.
//
// Node 0 is the root. It is allocated with port 0 self-looped (the
// reducer's "nothing left to do" sentinel), ports 1 and 2 pre-wired to
// each other, and a kind outside {ERA,CON,FAN} so it never participates
// in an active pair.
type Net struct {
	cells []uint32
	free  []uint32
}

// NewNet returns a net containing only the root node.
func NewNet() *Net {
	return &Net{cells: []uint32{0, 2, 1, rootKind}}
}

// Allocate reserves a node of the given kind, reusing a freed index when
// possible, and returns its index. Its three ports are initialised as
// self-loops (meaning "unconnected").
func (n *Net) Allocate(kind uint32) uint32 {
	var node uint32
	if l := len(n.free); l > 0 {
		node = n.free[l-1]
		n.free = n.free[:l-1]
	} else {
		node = uint32(len(n.cells)) / 4
		n.cells = append(n.cells, 0, 0, 0, 0)
	}
	n.cells[Link(node, 0)] = Link(node, 0)
	n.cells[Link(node, 1)] = Link(node, 1)
	n.cells[Link(node, 2)] = Link(node, 2)
	n.cells[Link(node, 3)] = kind
	return node
}

// Connect wires two links to each other.
func (n *Net) Connect(a, b uint32) {
	n.cells[a] = b
	n.cells[b] = a
}

// Enter returns the link on the other side of l.
func (n *Net) Enter(l uint32) uint32 {
	return n.cells[l]
}

// Kind returns the kind of a node.
func (n *Net) Kind(node uint32) uint32 {
	return n.cells[Link(node, 3)]
}

// Free reclaims a node's index for future allocation. Its cells are left
// untouched; Allocate reinitialises them.
func (n *Net) Free(node uint32) {
	n.free = append(n.free, node)
}

// NodeCount returns the number of node slots in the backing buffer,
// including freed ones.
func (n *Net) NodeCount() int {
	return len(n.cells) / 4
}

// FreeCount returns the number of reclaimed node indices awaiting reuse.
func (n *Net) FreeCount() int {
	return len(n.free)
}
