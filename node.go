package treemap

import (
	"fmt"
)

// Node represents a node in a Tree. A node exclusively owns its children and
// keeps no reference to its parent.
type Node[K, V any] struct {
	key           K
	value         V
	leftNode      *Node[K, V]
	rightNode     *Node[K, V]
	subtreeHeight int
}

// NewNode returns a new leaf node from a key and value.
func NewNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:           key,
		value:         value,
		subtreeHeight: 0,
	}
}

func (node *Node[K, V]) Key() K {
	return node.key
}

func (node *Node[K, V]) Value() V {
	return node.value
}

// String returns a string representation of the node.
func (node *Node[K, V]) String() string {
	return fmt.Sprintf("Node{%v:%v %d}", node.key, node.value, node.subtreeHeight)
}

func (node *Node[K, V]) isLeaf() bool {
	return node.leftNode == nil && node.rightNode == nil
}

// height returns the height of the subtree rooted at node, -1 for an absent
// subtree.
func (node *Node[K, V]) height() int {
	if node == nil {
		return -1
	}
	return node.subtreeHeight
}

// NOTE: mutates height
func (node *Node[K, V]) calcHeight() {
	node.subtreeHeight = max(node.leftNode.height(), node.rightNode.height()) + 1
}

func (node *Node[K, V]) calcBalance() int {
	return node.leftNode.height() - node.rightNode.height()
}

// get returns the node holding key in the subtree rooted at node, or nil.
func (node *Node[K, V]) get(compare func(a, b K) int, key K) *Node[K, V] {
	for node != nil {
		switch c := compare(key, node.key); {
		case c < 0:
			node = node.leftNode
		case c > 0:
			node = node.rightNode
		default:
			return node
		}
	}
	return nil
}

// traverse visits the subtree in key order and stops once cb returns true.
func (node *Node[K, V]) traverse(ascending bool, cb func(*Node[K, V]) bool) bool {
	if node == nil {
		return false
	}
	first, second := node.leftNode, node.rightNode
	if !ascending {
		first, second = second, first
	}
	if first.traverse(ascending, cb) {
		return true
	}
	if cb(node) {
		return true
	}
	return second.traverse(ascending, cb)
}

// NOTE: assumes that the heights of node and its children are current.
func (tree *Tree[K, V]) balance(node *Node[K, V]) (newSelf *Node[K, V]) {
	if !tree.balanced {
		return node
	}
	balance := node.calcBalance()
	if balance > 1 {
		if node.leftNode.calcBalance() < 0 {
			// Left Right Case
			node.leftNode = tree.rotateLeft(node.leftNode)
		}
		// Left Left Case
		return tree.rotateRight(node)
	}
	if balance < -1 {
		if node.rightNode.calcBalance() > 0 {
			// Right Left Case
			node.rightNode = tree.rotateRight(node.rightNode)
		}
		// Right Right Case
		return tree.rotateLeft(node)
	}
	// Nothing changed
	return node
}

// Rotate right and return the new subtree root.
func (tree *Tree[K, V]) rotateRight(node *Node[K, V]) *Node[K, V] {
	newNode := node.leftNode
	node.leftNode = newNode.rightNode
	newNode.rightNode = node

	node.calcHeight()
	newNode.calcHeight()

	tree.metrics.IncrCounter(1, metricsNamespace, "tree_rotate")
	return newNode
}

// Rotate left and return the new subtree root.
func (tree *Tree[K, V]) rotateLeft(node *Node[K, V]) *Node[K, V] {
	newNode := node.rightNode
	node.rightNode = newNode.leftNode
	newNode.leftNode = node

	node.calcHeight()
	newNode.calcHeight()

	tree.metrics.IncrCounter(1, metricsNamespace, "tree_rotate")
	return newNode
}
