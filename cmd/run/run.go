package run

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cosmos/treemap"
)

// Workload is a scripted sequence of map operations, usually read from YAML:
//
//	balanced: true
//	ops:
//	  - {op: put, key: b, value: "2"}
//	  - {op: get, key: b}
//	  - {op: remove, key: b}
type Workload struct {
	// Balanced defaults to true when omitted.
	Balanced *bool `yaml:"balanced"`
	Ops      []Op  `yaml:"ops"`
}

type Op struct {
	Op    string `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func Command() *cobra.Command {
	var (
		file    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "apply a YAML scripted workload of put/get/has/remove/clear operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			workload, err := ParseWorkload(f)
			if err != nil {
				return err
			}

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := treemap.NewZeroLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level))
			return Run(cmd.OutOrStdout(), log, workload)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the workload file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log at debug level")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	return cmd
}

// ParseWorkload decodes a YAML workload and checks its operations.
func ParseWorkload(r io.Reader) (Workload, error) {
	var w Workload
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		if err == io.EOF {
			return w, nil
		}
		return w, fmt.Errorf("decoding workload: %w", err)
	}
	for i, op := range w.Ops {
		switch op.Op {
		case "put", "get", "has", "remove", "clear":
		default:
			return w, fmt.Errorf("op %d: unknown operation %q", i, op.Op)
		}
	}
	return w, nil
}

// Run applies the workload to a fresh tree, writing one line per operation
// followed by the final contents in key order.
func Run(w io.Writer, log treemap.Logger, workload Workload) error {
	opts := treemap.DefaultTreeOptions()
	if workload.Balanced != nil {
		opts.Balanced = *workload.Balanced
	}
	if log != nil {
		opts.Logger = log
	}
	tree := treemap.NewOrderedTree[string, string](opts)

	for _, op := range workload.Ops {
		switch op.Op {
		case "put":
			old, updated, err := tree.Set(op.Key, op.Value)
			if err != nil {
				return err
			}
			if updated {
				fmt.Fprintf(w, "put %s=%s (was %s)\n", op.Key, op.Value, old)
			} else {
				fmt.Fprintf(w, "put %s=%s\n", op.Key, op.Value)
			}
		case "get":
			value, found, err := tree.Get(op.Key)
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintf(w, "get %s: %s\n", op.Key, value)
			} else {
				fmt.Fprintf(w, "get %s: <absent>\n", op.Key)
			}
		case "has":
			has, err := tree.Has(op.Key)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "has %s: %t\n", op.Key, has)
		case "remove":
			value, removed, err := tree.Remove(op.Key)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(w, "remove %s: %s\n", op.Key, value)
			} else {
				fmt.Fprintf(w, "remove %s: <absent>\n", op.Key)
			}
		case "clear":
			tree.Clear()
			fmt.Fprintln(w, "clear")
		default:
			return fmt.Errorf("unknown operation %q", op.Op)
		}
	}

	if err := tree.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(w, "size=%d height=%d\n", tree.Size(), tree.Height())
	for k, v := range tree.All() {
		fmt.Fprintf(w, "%s=%s\n", k, v)
	}
	return nil
}
