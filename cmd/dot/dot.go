package dot

import (
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/treemap"
)

func Command() *cobra.Command {
	var (
		keys   []int
		remove []int
		bst    bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "build a tree from integer keys and print it as a graphviz graph",
		Example: `treemap dot --keys 36,11,17,1,14,16,18,34,72,100 --remove 17 | dot -Tpng > tree.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return Write(w, keys, remove, !bst)
		},
	}
	cmd.Flags().IntSliceVar(&keys, "keys", nil, "keys to insert, in order")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "keys to remove after inserting")
	cmd.Flags().BoolVar(&bst, "bst", false, "use an unbalanced binary search tree")
	cmd.Flags().StringVar(&out, "out", "", "output file, stdout if empty")
	if err := cmd.MarkFlagRequired("keys"); err != nil {
		panic(err)
	}
	return cmd
}

// Write inserts keys, then removes remove, and writes the resulting tree to w.
func Write(w io.Writer, keys, remove []int, balanced bool) error {
	opts := treemap.DefaultTreeOptions()
	opts.Balanced = balanced
	tree := treemap.NewOrderedTree[int, struct{}](opts)
	for _, k := range keys {
		if _, _, err := tree.Set(k, struct{}{}); err != nil {
			return err
		}
	}
	for _, k := range remove {
		if _, _, err := tree.Remove(k); err != nil {
			return err
		}
	}
	return tree.WriteDot(w, strconv.Itoa)
}
