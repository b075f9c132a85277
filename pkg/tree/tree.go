// Package tree defines the rooted, named tree that d3network renders.
//
// A tree is a recursive container: every node carries a display name and an
// ordered list of children. The order of children is significant; it decides
// the left-to-right order of leaves in the rendered layout. The structure
// must be acyclic by caller contract, the package does not cycle-detect.
package tree

// Node is one element of a rooted tree. Children keep their insertion order.
type Node struct {
	Name     string  `json:"name"`
	Children []*Node `json:"children,omitempty"`
}

// New creates a node with the given name and children.
func New(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// Count returns the number of nodes in the subtree rooted at n, including n.
// A nil node counts as zero.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Depth returns the number of levels in the subtree rooted at n.
// A leaf has depth 1; a nil node has depth 0.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
