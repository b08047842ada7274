package treemap

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// DotGraph renders the tree as a Graphviz graph. Nodes are labelled with
// the formatted key and the node height; edges are labelled l and r. If
// format is nil, keys are formatted with %v.
func (tree *Tree[K, V]) DotGraph(format func(K) string) *dot.Graph {
	if format == nil {
		format = func(k K) string { return fmt.Sprintf("%v", k) }
	}
	graph := dot.NewGraph(dot.Directed)

	var traverse func(node *Node[K, V]) dot.Node
	traverse = func(node *Node[K, V]) dot.Node {
		key := format(node.key)
		n := graph.Node(key).Label(fmt.Sprintf("%s - %d", key, node.subtreeHeight))
		if node.leftNode != nil {
			n.Edge(traverse(node.leftNode), "l")
		}
		if node.rightNode != nil {
			n.Edge(traverse(node.rightNode), "r")
		}
		return n
	}

	if tree.root != nil {
		traverse(tree.root)
	}
	return graph
}

// WriteDot writes the DotGraph rendering of the tree to w.
func (tree *Tree[K, V]) WriteDot(w io.Writer, format func(K) string) error {
	_, err := io.WriteString(w, tree.DotGraph(format).String())
	return err
}
