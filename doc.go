// Package treemap implements an ordered map backed by an AVL tree.
//
// Basic usage of Tree.
//
//	import "github.com/cosmos/treemap"
//	...
//
//	tree := treemap.NewOrderedTree[string, int](treemap.DefaultTreeOptions())
//	tree.Set("alice", 1)
//	tree.Set("bob", 2)
//
//	tree.Get("alice") // 1, true, nil
//	tree.Set("alice", 3) // 1, true, nil (previous value)
//	tree.Remove("bob") // 2, true, nil
//	tree.Size() // 1
//
// Iterating in ascending key order:
//
//	for k, v := range tree.All() {
//		fmt.Println(k, v)
//	}
//
// or with an explicit iterator:
//
//	itr := tree.Iterator(true)
//	defer itr.Close()
//	for ; itr.Valid(); itr.Next() {
//		fmt.Println(itr.Key(), itr.Value())
//	}
//
// The tree must not be mutated while an iterator over it is in use. Doing
// so invalidates the iterator with ErrTreeMutated.
//
// Setting TreeOptions.Balanced to false yields a plain binary search tree
// with the same API and no rebalancing, mostly useful for comparison.
//
// A Tree is not safe for concurrent use.
package treemap
