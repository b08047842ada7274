package bench

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cosmos/treemap"
	"github.com/cosmos/treemap/internal/rand"
	"github.com/cosmos/treemap/metrics"
)

const (
	OrderSeq    = "seq"
	OrderRandom = "random"
)

type Options struct {
	N        int
	Order    string
	Seed     uint64
	Balanced bool
	Bins     int
	Proxy    metrics.Proxy
	Logger   treemap.Logger
}

// Result summarizes one benchmark run.
type Result struct {
	Balanced bool
	N        int
	Height   int
	Size     int64
	SetTime  time.Duration
	GetTime  time.Duration
	DelTime  time.Duration
}

func Command() *cobra.Command {
	var (
		n          int
		order      string
		seed       uint64
		bst        bool
		compare    bool
		bins       int
		promAddr   string
		cpuProfile string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "insert, look up and remove N keys and report the resulting tree height",
		Long: `Inserts N integer keys in sequential or random order, looks every key up,
removes every other key and validates the tree. With --compare the same
workload is replayed against an unbalanced binary search tree, which shows
how sequential inserts degrade it to a linked list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer func() {
					pprof.StopCPUProfile()
					f.Close()
				}()
			}

			log := treemap.NewZeroLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())
			var proxy metrics.Proxy
			if promAddr != "" {
				proxy = newPrometheusProxy(log, promAddr)
			}

			modes := []bool{!bst}
			if compare {
				modes = []bool{true, false}
			}
			out := cmd.OutOrStdout()
			for _, balanced := range modes {
				res, err := Run(out, Options{
					N:        n,
					Order:    order,
					Seed:     seed,
					Balanced: balanced,
					Bins:     bins,
					Proxy:    proxy,
					Logger:   log,
				})
				if err != nil {
					return err
				}
				PrintResult(out, res)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10_000, "number of keys")
	cmd.Flags().StringVar(&order, "order", OrderSeq, "insertion order: seq or random")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for --order random")
	cmd.Flags().BoolVar(&bst, "bst", false, "use an unbalanced binary search tree")
	cmd.Flags().BoolVar(&compare, "compare", false, "run against both the AVL tree and the unbalanced tree")
	cmd.Flags().IntVar(&bins, "bins", 0, "print a latency histogram with this many bins")
	cmd.Flags().StringVar(&promAddr, "prometheus", "", "serve prometheus metrics on this address, e.g. :2112")
	cmd.Flags().StringVar(&cpuProfile, "cpu-profile", "", "write cpu profile to file")
	return cmd
}

// Run executes the workload described by opts. Unless opts.Proxy is set, the
// collected metrics are reported to w.
func Run(w io.Writer, opts Options) (Result, error) {
	keys, err := workloadKeys(opts)
	if err != nil {
		return Result{}, err
	}
	if opts.Logger == nil {
		opts.Logger = treemap.NewNopLogger()
	}

	structMetrics := metrics.NewStructMetrics()
	treeOpts := treemap.DefaultTreeOptions()
	treeOpts.Balanced = opts.Balanced
	treeOpts.Logger = opts.Logger
	treeOpts.MetricsProxy = structMetrics
	if opts.Proxy != nil {
		treeOpts.MetricsProxy = opts.Proxy
	}
	tree := treemap.NewOrderedTree[int, int](treeOpts)

	res := Result{Balanced: opts.Balanced, N: len(keys)}
	opts.Logger.Info("starting bench", "n", len(keys), "order", opts.Order, "balanced", opts.Balanced)

	since := time.Now()
	for _, k := range keys {
		if _, _, err := tree.Set(k, k); err != nil {
			return res, err
		}
	}
	res.SetTime = time.Since(since)
	res.Height = tree.Height()

	since = time.Now()
	for _, k := range keys {
		v, found, err := tree.Get(k)
		if err != nil {
			return res, err
		}
		if !found || v != k {
			return res, fmt.Errorf("key %d: got %d, found=%t", k, v, found)
		}
	}
	res.GetTime = time.Since(since)

	since = time.Now()
	for i, k := range keys {
		if i%2 != 0 {
			continue
		}
		if _, removed, err := tree.Remove(k); err != nil {
			return res, err
		} else if !removed {
			return res, fmt.Errorf("key %d was not removed", k)
		}
	}
	res.DelTime = time.Since(since)
	res.Size = tree.Size()

	if err := tree.Validate(); err != nil {
		return res, err
	}
	opts.Logger.Info("bench done", "height", res.Height, "size", res.Size)

	if opts.Proxy == nil {
		structMetrics.Report(w)
		if err := structMetrics.QueryReport(w, opts.Bins); err != nil {
			return res, err
		}
	}
	return res, nil
}

func workloadKeys(opts Options) ([]int, error) {
	if opts.N < 0 {
		return nil, fmt.Errorf("n must not be negative, got %d", opts.N)
	}
	switch opts.Order {
	case OrderSeq, "":
		return rand.Seq(opts.N), nil
	case OrderRandom:
		return rand.NewRand(opts.Seed).Shuffled(opts.N), nil
	default:
		return nil, fmt.Errorf("unknown order %q", opts.Order)
	}
}

func PrintResult(w io.Writer, res Result) {
	kind := "avl"
	if !res.Balanced {
		kind = "bst"
	}
	fmt.Fprintf(w, "%s: n=%s height=%d size=%s set/s=%s get/s=%s remove/s=%s\n",
		kind,
		humanize.Comma(int64(res.N)),
		res.Height,
		humanize.Comma(res.Size),
		perSecond(res.N, res.SetTime),
		perSecond(res.N, res.GetTime),
		perSecond((res.N+1)/2, res.DelTime),
	)
}

func perSecond(n int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return humanize.Comma(int64(float64(n) / d.Seconds()))
}

func newPrometheusProxy(log treemap.Logger, addr string) metrics.Proxy {
	reg := prometheus.NewRegistry()
	p := metrics.NewPrometheusProxy(reg)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("prometheus listener stopped", "addr", addr, "err", err)
		}
	}()
	log.Info("serving prometheus metrics", "addr", addr)
	return p
}
