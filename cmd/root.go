package main

import (
	"github.com/cosmos/treemap/cmd/bench"
	"github.com/cosmos/treemap/cmd/dot"
	"github.com/cosmos/treemap/cmd/run"
	"github.com/spf13/cobra"
)

func RootCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "treemap",
		Short: "exercise and benchmark the treemap AVL map",
	}
	cmd.AddCommand(
		bench.Command(),
		dot.Command(),
		run.Command(),
	)
	return cmd, nil
}
