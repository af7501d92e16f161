package tree

import "fmt"

// Eval walks the tree for value v and returns the output of the leaf reached.
func Eval(root Node, v int64) string {
	for {
		switch n := root.(type) {
		case *Leaf:
			return n.Output
		case *Branch:
			if v < n.Threshold {
				root = n.Low
			} else {
				root = n.High
			}
		default:
			panic(fmt.Sprintf("tree: unexpected node %T", root))
		}
	}
}

// Stats summarises the shape of a tree.
type Stats struct {
	Leaves   int
	Branches int
	// Depth is the number of comparisons on the longest path.
	Depth int
}

// Walk visits every node in preorder. depth is 0 for the root.
// Returning false from fn skips the node's children.
func Walk(root Node, fn func(n Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}

	if b, ok := n.(*Branch); ok {
		walk(b.Low, depth+1, fn)
		walk(b.High, depth+1, fn)
	}
}

// Collect returns the tree's statistics.
func Collect(root Node) Stats {
	var s Stats

	Walk(root, func(n Node, depth int) bool {
		switch n.(type) {
		case *Leaf:
			s.Leaves++
			s.Depth = max(s.Depth, depth)
		case *Branch:
			s.Branches++
		}

		return true
	})

	return s
}

// Size returns the number of leaves below n.
func Size(n Node) int {
	return Collect(n).Leaves
}

// Outputs lists the leaf outputs from lowest to highest value.
func Outputs(root Node) []string {
	var res []string

	Walk(root, func(n Node, _ int) bool {
		if l, ok := n.(*Leaf); ok {
			res = append(res, l.Output)
		}

		return true
	})

	return res
}
