package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazekit/maze"
)

// noParent marks a node without a parent (the root, or not yet relaxed).
const noParent = -1

// idColBits is the shift pairing row and column into one identity.
// Grids stay far below 2^16 cells per side.
const idColBits = 16

// CellID derives the stable numeric identity of a cell: (row<<16)|col.
// The pairing is reversible and unique per cell, so it serves as the
// sole key for set and map membership throughout the search.
func CellID(c maze.Cell) int { return c.Row<<idColBits | c.Col }

// Node is one maze cell as visited by a search. Identity is (Row,Col)
// alone; Cost, StepCost, and the parent/child links are mutable attached
// data and never participate in identity. Parent and children are held
// as cell IDs into the owning Search's arena rather than pointers, so
// re-parenting a node is a pure index update.
type Node struct {
	Row, Col int

	// Cost is the cumulative cost from the start. Initialized to +Inf
	// and tightened in place whenever a cheaper path is found.
	Cost float64

	// StepCost is the cost of the incoming edge from the current parent.
	StepCost float64

	parent   int   // arena ID of the parent, noParent for the root
	children []int // arena IDs of owned children, in attach order
}

// newNode creates an unrelaxed node for cell c (cost +Inf, no parent).
func newNode(c maze.Cell) *Node {
	return &Node{
		Row:    c.Row,
		Col:    c.Col,
		Cost:   math.Inf(1),
		parent: noParent,
	}
}

// ID returns the node's arena identity, (Row<<16)|Col.
func (n *Node) ID() int { return n.Row<<idColBits | n.Col }

// Cell returns the node's grid coordinate.
func (n *Node) Cell() maze.Cell { return maze.Cell{Row: n.Row, Col: n.Col} }

// String renders the node for debugging and test failure messages.
func (n *Node) String() string {
	return fmt.Sprintf("Node(%d,%d cost=%g)", n.Row, n.Col, n.Cost)
}

// arena owns every node of one search, keyed by cell identity. The tree
// structure lives entirely in node parent/children IDs resolved through
// this map; discarding the arena discards the whole tree at once.
type arena map[int]*Node

// node returns the existing node for c, creating it on first reference.
func (a arena) node(c maze.Cell) *Node {
	id := CellID(c)
	if n, ok := a[id]; ok {
		return n
	}
	n := newNode(c)
	a[id] = n

	return n
}

// reparent makes parent the owner of child, detaching child from any
// previous parent first. Attaching under the same parent twice keeps the
// child's original position in the attach order.
func (a arena) reparent(child, parent *Node) {
	cid := child.ID()
	pid := parent.ID()
	if child.parent == pid {
		return
	}
	if old, ok := a[child.parent]; ok {
		old.detach(cid)
	}
	child.parent = pid
	parent.children = append(parent.children, cid)
}

// detach removes id from n's children, preserving order.
func (n *Node) detach(id int) {
	for i, c := range n.children {
		if c == id {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
