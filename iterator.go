package treemap

import (
	"iter"

	"github.com/pkg/errors"
)

type Iterator[K, V any] interface {
	// Valid returns whether the current iterator is valid. Once invalid, the
	// iterator remains invalid forever.
	Valid() bool

	// Next moves the iterator to the next key, as defined by order of
	// iteration. Calling Next on an invalid iterator records
	// ErrIteratorExhausted.
	Next()

	// Key returns the key at the current position. Panics if the iterator is
	// invalid.
	Key() K

	// Value returns the value at the current position. Panics if the
	// iterator is invalid.
	Value() V

	// Error returns the last error encountered by the iterator, if any.
	Error() error

	// Close closes the iterator, releasing any allocated resources.
	Close() error
}

var _ Iterator[string, int] = (*TreeIterator[string, int])(nil)

// TreeIterator walks a tree in order, one node at a time. It holds the path
// of pending ancestors on an explicit stack, so it needs O(height) memory.
//
// The tree must not be mutated while the iterator is in use. A change of
// shape (new key, removal, Clear) is detected on the next call to Next,
// which invalidates the iterator with ErrTreeMutated.
type TreeIterator[K, V any] struct {
	tree       *Tree[K, V]
	ascending  bool
	generation uint64

	stack []*Node[K, V]
	cur   *Node[K, V]

	err   error // current error
	valid bool  // iteration status
}

// Iterator returns an iterator positioned on the smallest key, or on the
// largest key when ascending is false. The iterator is already invalid if the
// tree is empty.
func (tree *Tree[K, V]) Iterator(ascending bool) *TreeIterator[K, V] {
	i := &TreeIterator[K, V]{
		tree:       tree,
		ascending:  ascending,
		generation: tree.generation,
	}
	i.pushPath(tree.root)
	i.step()
	return i
}

func (i *TreeIterator[K, V]) Valid() bool {
	return i.valid
}

func (i *TreeIterator[K, V]) Next() {
	if !i.valid {
		if i.err == nil {
			i.err = errors.WithStack(ErrIteratorExhausted)
		}
		return
	}
	if i.generation != i.tree.generation {
		i.err = errors.WithStack(ErrTreeMutated)
		i.invalidate()
		return
	}
	i.step()
}

// pushPath pushes node and its chain of left children, or right children
// when descending.
func (i *TreeIterator[K, V]) pushPath(node *Node[K, V]) {
	for node != nil {
		i.stack = append(i.stack, node)
		if i.ascending {
			node = node.leftNode
		} else {
			node = node.rightNode
		}
	}
}

func (i *TreeIterator[K, V]) step() {
	if len(i.stack) == 0 {
		i.invalidate()
		return
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	if i.ascending {
		i.pushPath(n.rightNode)
	} else {
		i.pushPath(n.leftNode)
	}
	i.cur = n
	i.valid = true
}

func (i *TreeIterator[K, V]) invalidate() {
	i.stack = nil
	i.cur = nil
	i.valid = false
}

func (i *TreeIterator[K, V]) Key() K {
	i.assertValid()
	return i.cur.key
}

func (i *TreeIterator[K, V]) Value() V {
	i.assertValid()
	return i.cur.value
}

func (i *TreeIterator[K, V]) assertValid() {
	if i.valid {
		return
	}
	if i.err != nil {
		panic(i.err)
	}
	panic(errors.WithStack(ErrIteratorExhausted))
}

func (i *TreeIterator[K, V]) Error() error {
	return i.err
}

func (i *TreeIterator[K, V]) Close() error {
	i.invalidate()
	return i.err
}

// Entry is a key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// All returns an iterator over the tree's entries in ascending key order.
// It panics with ErrTreeMutated if the tree changes shape during the loop.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.iterate(true, yield)
	}
}

// Backward returns an iterator over the tree's entries in descending key
// order. It panics with ErrTreeMutated if the tree changes shape during the
// loop.
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.iterate(false, yield)
	}
}

// Keys returns an iterator over the tree's keys in ascending order.
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.iterate(true, func(k K, _ V) bool {
			return yield(k)
		})
	}
}

func (tree *Tree[K, V]) iterate(ascending bool, yield func(K, V) bool) {
	itr := tree.Iterator(ascending)
	for ; itr.Valid(); itr.Next() {
		if !yield(itr.Key(), itr.Value()) {
			return
		}
	}
	if err := itr.Error(); err != nil {
		panic(err)
	}
}

// Entries returns all entries in ascending key order.
func (tree *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.size)
	tree.root.traverse(true, func(node *Node[K, V]) bool {
		entries = append(entries, Entry[K, V]{Key: node.key, Value: node.value})
		return false
	})
	return entries
}

// Traverse calls fn for every entry in key order until fn returns true. It
// returns whether the traversal was stopped.
func (tree *Tree[K, V]) Traverse(ascending bool, fn func(key K, value V) (stop bool)) bool {
	return tree.root.traverse(ascending, func(node *Node[K, V]) bool {
		return fn(node.key, node.value)
	})
}
