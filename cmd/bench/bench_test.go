package bench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/treemap/metrics"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name     string
		opts     Options
		height   int
		reported bool
	}{
		{"avl seq", Options{N: 1024, Order: OrderSeq, Balanced: true}, 10, true},
		{"bst seq", Options{N: 1024, Order: OrderSeq, Balanced: false}, 1023, true},
		{"avl random", Options{N: 1000, Order: OrderRandom, Seed: 3, Balanced: true, Bins: 4}, -1, true},
		{"proxy", Options{N: 10, Balanced: true, Proxy: metrics.NilMetrics{}}, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			res, err := Run(&buf, tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.opts.N, res.N)
			require.Equal(t, int64(tc.opts.N/2), res.Size)
			if tc.height >= 0 {
				require.Equal(t, tc.height, res.Height)
			} else {
				require.Less(t, res.Height, 15)
			}
			if tc.reported {
				require.Contains(t, buf.String(), "Tree:")
			} else {
				require.Empty(t, buf.String())
			}

			buf.Reset()
			PrintResult(&buf, res)
			require.Contains(t, buf.String(), "height=")
		})
	}
}

func TestRun_BadOptions(t *testing.T) {
	_, err := Run(&bytes.Buffer{}, Options{N: 10, Order: "sideways"})
	require.ErrorContains(t, err, "unknown order")
	_, err = Run(&bytes.Buffer{}, Options{N: -1})
	require.Error(t, err)
}

func TestCommand(t *testing.T) {
	cmd := Command()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--n", "100", "--compare"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "avl: n=100 height=6")
	require.Contains(t, buf.String(), "bst: n=100 height=99")
}
