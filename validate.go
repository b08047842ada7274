package treemap

import (
	"github.com/pkg/errors"
)

// Validate walks the whole tree and checks that the keys are in search tree
// order, every stored height is correct, the size counter matches the number
// of nodes and, for balanced trees, that no node is out of balance. The
// first violation found is returned wrapped in ErrInvalidTree.
func (tree *Tree[K, V]) Validate() error {
	count, err := tree.validateNode(tree.root, nil, nil)
	if err == nil && count != tree.size {
		err = errors.Wrapf(ErrInvalidTree, "size is %d but %d nodes are reachable", tree.size, count)
	}
	if err != nil {
		tree.logger.Error("tree validation failed", "err", err)
		return err
	}
	return nil
}

// validateNode checks the subtree rooted at node, whose keys must lie
// strictly between lo and hi when those are set, and returns its node count.
func (tree *Tree[K, V]) validateNode(node *Node[K, V], lo, hi *K) (int64, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && tree.compare(node.key, *lo) <= 0 {
		return 0, errors.Wrapf(ErrInvalidTree, "key %v is not greater than ancestor key %v", node.key, *lo)
	}
	if hi != nil && tree.compare(node.key, *hi) >= 0 {
		return 0, errors.Wrapf(ErrInvalidTree, "key %v is not less than ancestor key %v", node.key, *hi)
	}

	leftCount, err := tree.validateNode(node.leftNode, lo, &node.key)
	if err != nil {
		return 0, err
	}
	rightCount, err := tree.validateNode(node.rightNode, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(node.leftNode.height(), node.rightNode.height()) + 1; node.subtreeHeight != want {
		return 0, errors.Wrapf(ErrInvalidTree, "node %v has height %d, expected %d", node.key, node.subtreeHeight, want)
	}
	if tree.balanced {
		if balance := node.calcBalance(); balance > 1 || balance < -1 {
			return 0, errors.Wrapf(ErrInvalidTree, "node %v has balance factor %d", node.key, balance)
		}
	}
	return leftCount + rightCount + 1, nil
}
