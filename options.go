package treemap

import "github.com/cosmos/treemap/metrics"

// TreeOptions define tree options.
type TreeOptions struct {
	// Balanced enables AVL rebalancing. When false the tree is a plain
	// binary search tree whose height depends on insertion order.
	Balanced     bool
	Logger       Logger
	MetricsProxy metrics.Proxy
}

// DefaultTreeOptions returns the default options for a tree.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		Balanced:     true,
		Logger:       NewNopLogger(),
		MetricsProxy: metrics.NilMetrics{},
	}
}
