package treemap

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cosmos/treemap/metrics"
)

const metricsNamespace = "treemap"

// Tree is an ordered map from K to V backed by an AVL tree.
//
// Keys are ordered by the compare function given to NewTree, which must
// define a total order and return a negative number, zero or a positive
// number when a < b, a == b or a > b respectively.
type Tree[K, V any] struct {
	root    *Node[K, V]
	size    int64
	compare func(a, b K) int

	// generation changes whenever the shape of the tree changes; iterators
	// use it to detect mutation.
	generation uint64

	// options
	balanced     bool
	nilableKeys  bool
	logger       Logger
	metrics      metrics.Proxy
	metricsProxy metrics.Proxy
}

// NewTree returns an empty tree ordered by compare.
func NewTree[K, V any](compare func(a, b K) int, opts TreeOptions) *Tree[K, V] {
	if compare == nil {
		panic("treemap: nil compare function")
	}
	tree := &Tree[K, V]{
		compare:     compare,
		balanced:    opts.Balanced,
		nilableKeys: nilable[K](),
		logger:      opts.Logger,
		metrics:     opts.MetricsProxy,
	}
	if tree.logger == nil {
		tree.logger = NewNopLogger()
	}
	if tree.metrics == nil {
		tree.metrics = metrics.NilMetrics{}
	}
	if _, ok := tree.metrics.(metrics.NilMetrics); !ok {
		tree.metricsProxy = tree.metrics
	}
	return tree
}

// NewOrderedTree returns an empty tree ordered by cmp.Compare.
func NewOrderedTree[K cmp.Ordered, V any](opts TreeOptions) *Tree[K, V] {
	return NewTree[K, V](cmp.Compare[K], opts)
}

// NewBSTree returns an empty, never rebalanced binary search tree ordered by
// cmp.Compare. Its height depends on insertion order.
func NewBSTree[K cmp.Ordered, V any]() *Tree[K, V] {
	opts := DefaultTreeOptions()
	opts.Balanced = false
	return NewOrderedTree[K, V](opts)
}

// Get returns the value stored at key. found is false if the key is not in
// the tree.
func (tree *Tree[K, V]) Get(key K) (value V, found bool, err error) {
	if tree.metricsProxy != nil {
		defer tree.metricsProxy.MeasureSince(time.Now(), metricsNamespace, "tree_get")
	}
	if err := tree.checkKey(key); err != nil {
		return value, false, err
	}
	node := tree.root.get(tree.compare, key)
	if node == nil {
		return value, false, nil
	}
	return node.value, true, nil
}

// Has returns whether key is in the tree.
func (tree *Tree[K, V]) Has(key K) (bool, error) {
	if tree.metricsProxy != nil {
		defer tree.metricsProxy.MeasureSince(time.Now(), metricsNamespace, "tree_has")
	}
	if err := tree.checkKey(key); err != nil {
		return false, err
	}
	return tree.root.get(tree.compare, key) != nil, nil
}

// Set sets a key in the tree. It returns the previous value and true when an
// existing value was updated, while false means it was a new key.
func (tree *Tree[K, V]) Set(key K, value V) (old V, updated bool, err error) {
	if tree.metricsProxy != nil {
		defer tree.metricsProxy.MeasureSince(time.Now(), metricsNamespace, "tree_set")
	}
	if err := tree.checkKey(key); err != nil {
		return old, false, err
	}

	tree.root, old, updated = tree.recursiveSet(tree.root, key, value)
	if updated {
		tree.metrics.IncrCounter(1, metricsNamespace, "tree_update")
		return old, true, nil
	}

	tree.size++
	tree.generation++
	tree.metrics.IncrCounter(1, metricsNamespace, "tree_new_node")
	tree.setGauges()
	return old, false, nil
}

func (tree *Tree[K, V]) recursiveSet(node *Node[K, V], key K, value V) (
	newSelf *Node[K, V], old V, updated bool,
) {
	if node == nil {
		return NewNode(key, value), old, false
	}

	switch c := tree.compare(key, node.key); {
	case c < 0:
		node.leftNode, old, updated = tree.recursiveSet(node.leftNode, key, value)
	case c > 0:
		node.rightNode, old, updated = tree.recursiveSet(node.rightNode, key, value)
	default:
		old, node.value = node.value, value
		return node, old, true
	}

	if updated {
		return node, old, true
	}
	node.calcHeight()
	return tree.balance(node), old, false
}

// Remove removes a key from the tree and returns its value. removed is false
// if the key was not in the tree, in which case the tree is unchanged.
func (tree *Tree[K, V]) Remove(key K) (value V, removed bool, err error) {
	if tree.metricsProxy != nil {
		defer tree.metricsProxy.MeasureSince(time.Now(), metricsNamespace, "tree_remove")
	}
	if err := tree.checkKey(key); err != nil {
		return value, false, err
	}
	if tree.root == nil {
		return value, false, nil
	}

	newRoot, value, removed := tree.recursiveRemove(tree.root, key)
	if !removed {
		return value, false, nil
	}

	tree.root = newRoot
	tree.size--
	tree.generation++
	tree.metrics.IncrCounter(1, metricsNamespace, "tree_delete")
	tree.setGauges()
	return value, true, nil
}

// removes the node corresponding to the passed key and balances the tree.
// It returns:
// - the node that replaces the orig. node after remove
// - the removed value
// - whether the key was found
func (tree *Tree[K, V]) recursiveRemove(node *Node[K, V], key K) (newSelf *Node[K, V], value V, removed bool) {
	if node == nil {
		return nil, value, false
	}

	var child *Node[K, V]
	switch c := tree.compare(key, node.key); {
	case c < 0:
		child, value, removed = tree.recursiveRemove(node.leftNode, key)
		if !removed {
			return node, value, false
		}
		node.leftNode = child
	case c > 0:
		child, value, removed = tree.recursiveRemove(node.rightNode, key)
		if !removed {
			return node, value, false
		}
		node.rightNode = child
	default:
		value = node.value
		if node.leftNode == nil {
			return node.rightNode, value, true
		}
		if node.rightNode == nil {
			return node.leftNode, value, true
		}
		// Both children present: the largest key of the left subtree takes
		// the place of the removed key.
		var pred *Node[K, V]
		node.leftNode, pred = tree.removeMax(node.leftNode)
		node.key, node.value = pred.key, pred.value
	}

	node.calcHeight()
	return tree.balance(node), value, true
}

// removeMax detaches the node with the largest key from the subtree rooted
// at node, which must not be nil, and balances every level on the way back.
func (tree *Tree[K, V]) removeMax(node *Node[K, V]) (newSelf *Node[K, V], maxNode *Node[K, V]) {
	if node.rightNode == nil {
		return node.leftNode, node
	}
	node.rightNode, maxNode = tree.removeMax(node.rightNode)
	node.calcHeight()
	return tree.balance(node), maxNode
}

// Clear removes all keys from the tree.
func (tree *Tree[K, V]) Clear() {
	tree.logger.Debug("clearing tree", "size", tree.size, "height", tree.Height())
	tree.root = nil
	tree.size = 0
	tree.generation++
	tree.setGauges()
}

// Size returns the number of keys in the tree.
func (tree *Tree[K, V]) Size() int64 {
	return tree.size
}

// IsEmpty returns whether or not the tree has any keys.
func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.size == 0
}

// Height returns the height of the tree, 0 for a single key and -1 for an
// empty tree.
func (tree *Tree[K, V]) Height() int {
	return tree.root.height()
}

// Balanced reports whether the tree rebalances itself.
func (tree *Tree[K, V]) Balanced() bool {
	return tree.balanced
}

// String returns the tree turned sideways: right subtrees above, left
// subtrees below their parent.
func (tree *Tree[K, V]) String() string {
	if tree.root == nil {
		return "<empty>\n"
	}
	var sb strings.Builder
	printNode(&sb, tree.root, 0)
	return sb.String()
}

func printNode[K, V any](sb *strings.Builder, node *Node[K, V], indent int) {
	if node == nil {
		return
	}
	indentPrefix := strings.Repeat("    ", indent)
	printNode(sb, node.rightNode, indent+1)
	if node.isLeaf() {
		fmt.Fprintf(sb, "%s%v = %v\n", indentPrefix, node.key, node.value)
	} else {
		fmt.Fprintf(sb, "%s%v = %v height:%d\n", indentPrefix, node.key, node.value, node.subtreeHeight)
	}
	printNode(sb, node.leftNode, indent+1)
}

func (tree *Tree[K, V]) checkKey(key K) error {
	if tree.nilableKeys && isNilKey(key) {
		return errors.WithStack(ErrNilKey)
	}
	return nil
}

func (tree *Tree[K, V]) setGauges() {
	tree.metrics.SetGauge(float32(tree.size), metricsNamespace, "tree_size")
	tree.metrics.SetGauge(float32(tree.Height()), metricsNamespace, "tree_height")
}
