package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/dustin/go-humanize"
)

// Proxy receives tree instrumentation. keys[0] is the namespace and the
// remaining keys name the metric.
type Proxy interface {
	IncrCounter(val float32, keys ...string)
	SetGauge(val float32, keys ...string)
	MeasureSince(start time.Time, keys ...string)
}

var (
	_ Proxy = NilMetrics{}
	_ Proxy = (*StructMetrics)(nil)
)

// NilMetrics discards everything.
type NilMetrics struct{}

func (NilMetrics) IncrCounter(float32, ...string)    {}
func (NilMetrics) SetGauge(float32, ...string)       {}
func (NilMetrics) MeasureSince(time.Time, ...string) {}

type TreeMetrics struct {
	TreeUpdate  int64
	TreeNewNode int64
	TreeDelete  int64
	TreeRotate  int64

	TreeSize   int64
	TreeHeight int64
}

type QueryMetrics struct {
	GetDurations    []time.Duration
	SetDurations    []time.Duration
	RemoveDurations []time.Duration
	QueryTime       time.Duration
	QueryCount      int64
}

// StructMetrics accumulates everything it receives in plain struct fields.
// It is meant for benchmarks and tests, not for long running processes,
// since latency samples are retained until SetQueryZero.
type StructMetrics struct {
	*TreeMetrics
	*QueryMetrics
}

func NewStructMetrics() *StructMetrics {
	return &StructMetrics{
		TreeMetrics:  &TreeMetrics{},
		QueryMetrics: &QueryMetrics{},
	}
}

func (s *StructMetrics) IncrCounter(val float32, keys ...string) {
	if len(keys) != 2 {
		return
	}
	switch keys[1] {
	case "tree_update":
		s.TreeUpdate += int64(val)
	case "tree_new_node":
		s.TreeNewNode += int64(val)
	case "tree_delete":
		s.TreeDelete += int64(val)
	case "tree_rotate":
		s.TreeRotate += int64(val)
	}
}

func (s *StructMetrics) SetGauge(val float32, keys ...string) {
	if len(keys) != 2 {
		return
	}
	switch keys[1] {
	case "tree_size":
		s.TreeSize = int64(val)
	case "tree_height":
		s.TreeHeight = int64(val)
	}
}

func (s *StructMetrics) MeasureSince(start time.Time, keys ...string) {
	if len(keys) != 2 {
		return
	}
	dur := time.Since(start)
	switch keys[1] {
	case "tree_get":
		s.GetDurations = append(s.GetDurations, dur)
	case "tree_set":
		s.SetDurations = append(s.SetDurations, dur)
	case "tree_remove":
		s.RemoveDurations = append(s.RemoveDurations, dur)
	default:
		return
	}
	s.QueryTime += dur
	s.QueryCount++
}

func (m *TreeMetrics) Report(w io.Writer) {
	fmt.Fprintf(w, "Tree:\n update: %s, new node: %s, delete: %s, rotate: %s\n",
		humanize.Comma(m.TreeUpdate),
		humanize.Comma(m.TreeNewNode),
		humanize.Comma(m.TreeDelete),
		humanize.Comma(m.TreeRotate))
	fmt.Fprintf(w, " size: %s, height: %d\n", humanize.Comma(m.TreeSize), m.TreeHeight)
}

// QueryReport prints throughput and, if bins > 0, a latency histogram of all
// recorded operations up to 50µs. The recorded samples are reset afterwards.
func (m *QueryMetrics) QueryReport(w io.Writer, bins int) error {
	if m.QueryCount == 0 {
		return nil
	}

	fmt.Fprintf(w, "queries=%s q/s=%s dur/q=%s dur=%s get=%s set=%s remove=%s\n",
		humanize.Comma(m.QueryCount),
		humanize.Comma(int64(float64(m.QueryCount)/m.QueryTime.Seconds())),
		time.Duration(int64(m.QueryTime)/m.QueryCount),
		m.QueryTime.Round(time.Millisecond),
		humanize.Comma(int64(len(m.GetDurations))),
		humanize.Comma(int64(len(m.SetDurations))),
		humanize.Comma(int64(len(m.RemoveDurations))),
	)

	if bins > 0 {
		var histData []float64
		for _, durs := range [][]time.Duration{m.GetDurations, m.SetDurations, m.RemoveDurations} {
			for _, d := range durs {
				if d > 50*time.Microsecond {
					continue
				}
				histData = append(histData, float64(d))
			}
		}
		if len(histData) > 0 {
			hist := histogram.Hist(bins, histData)
			err := histogram.Fprintf(w, hist, histogram.Linear(10), func(v float64) string {
				return time.Duration(v).String()
			})
			if err != nil {
				return err
			}
		}
	}

	m.SetQueryZero()

	return nil
}

func (m *QueryMetrics) SetQueryZero() {
	m.GetDurations = nil
	m.SetDurations = nil
	m.RemoveDurations = nil
	m.QueryTime = 0
	m.QueryCount = 0
}
