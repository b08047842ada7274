package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStructMetrics(t *testing.T) {
	m := NewStructMetrics()
	m.IncrCounter(1, "treemap", "tree_new_node")
	m.IncrCounter(1, "treemap", "tree_new_node")
	m.IncrCounter(1, "treemap", "tree_update")
	m.IncrCounter(1, "treemap", "tree_delete")
	m.IncrCounter(3, "treemap", "tree_rotate")
	m.IncrCounter(1, "treemap", "unknown")
	m.IncrCounter(1, "tree_new_node")
	m.SetGauge(1234, "treemap", "tree_size")
	m.SetGauge(11, "treemap", "tree_height")

	start := time.Now().Add(-time.Microsecond)
	m.MeasureSince(start, "treemap", "tree_get")
	m.MeasureSince(start, "treemap", "tree_set")
	m.MeasureSince(start, "treemap", "tree_remove")
	m.MeasureSince(start, "treemap", "tree_has")

	require.Equal(t, int64(2), m.TreeNewNode)
	require.Equal(t, int64(1), m.TreeUpdate)
	require.Equal(t, int64(1), m.TreeDelete)
	require.Equal(t, int64(3), m.TreeRotate)
	require.Equal(t, int64(1234), m.TreeSize)
	require.Equal(t, int64(11), m.TreeHeight)
	require.Len(t, m.GetDurations, 1)
	require.Len(t, m.SetDurations, 1)
	require.Len(t, m.RemoveDurations, 1)
	require.Equal(t, int64(3), m.QueryCount)

	var buf bytes.Buffer
	m.Report(&buf)
	require.Contains(t, buf.String(), "new node: 2")
	require.Contains(t, buf.String(), "size: 1,234, height: 11")

	buf.Reset()
	require.NoError(t, m.QueryReport(&buf, 5))
	require.Contains(t, buf.String(), "queries=3")
	require.Zero(t, m.QueryCount)
	require.Nil(t, m.GetDurations)

	buf.Reset()
	require.NoError(t, m.QueryReport(&buf, 5))
	require.Empty(t, buf.String())
}

func TestNilMetrics(t *testing.T) {
	var p Proxy = NilMetrics{}
	require.NotPanics(t, func() {
		p.IncrCounter(1, "a", "b")
		p.SetGauge(1, "a", "b")
		p.MeasureSince(time.Now(), "a", "b")
	})
}

func TestPrometheusProxy(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheusProxy(reg)

	p.IncrCounter(1, "treemap", "tree_new_node")
	p.IncrCounter(2, "treemap", "tree_new_node")
	p.IncrCounter(1, "bad")
	p.SetGauge(42, "treemap", "tree_size")
	p.MeasureSince(time.Now(), "treemap", "tree_get")

	require.Equal(t, 3.0, testutil.ToFloat64(p.counters.WithLabelValues("treemap", "tree_new_node")))
	require.Equal(t, 42.0, testutil.ToFloat64(p.gauges.WithLabelValues("treemap", "tree_size")))
	require.Equal(t, 1, testutil.CollectAndCount(p.durations))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
