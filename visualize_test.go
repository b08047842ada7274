package treemap

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTree_DotGraph(t *testing.T) {
	tree := NewOrderedTree[int, int](DefaultTreeOptions())
	for _, k := range []int{2, 1, 3} {
		_, _, err := tree.Set(k, k)
		require.NoError(t, err)
	}

	graph := tree.DotGraph(strconv.Itoa)
	root, found := graph.FindNodeById("2")
	require.True(t, found)
	for _, id := range []string{"1", "3"} {
		child, found := graph.FindNodeById(id)
		require.True(t, found, id)
		require.Len(t, graph.FindEdges(root, child), 1)
	}

	var buf bytes.Buffer
	require.NoError(t, tree.WriteDot(&buf, nil))
	out := buf.String()
	require.Contains(t, out, "digraph")
	require.Contains(t, out, "2 - 1")
	require.Contains(t, out, "1 - 0")
}

func TestTree_DotGraphEmpty(t *testing.T) {
	tree := NewOrderedTree[int, int](DefaultTreeOptions())
	graph := tree.DotGraph(nil)
	_, found := graph.FindNodeById("0")
	require.False(t, found)
}
