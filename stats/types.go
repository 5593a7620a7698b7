// Package stats implements the concurrent in-memory aggregation core of
// statix: per-entity accumulators grouped into stat containers, a counter
// registry bucketed by classification, and point-in-time sample export.
package stats

import (
	"fmt"
	"math"
)

// Kind defines the combine rule for an accumulator.
// It determines how a newly observed sample is folded into the running value.
type Kind int

const (
	KindLast  Kind = iota // KindLast keeps the most recently observed value; the last combine wins.
	KindMin               // KindMin keeps the smallest observed value.
	KindMax               // KindMax keeps the largest observed value.
	KindSum               // KindSum accumulates the arithmetic sum of observed values.
	KindCount             // KindCount counts observations, ignoring the sample value itself.
)

// initValue returns the starting value for an accumulator of this kind,
// chosen so that the first combine always replaces the sentinel.
func (k Kind) initValue() int64 {
	switch k {
	case KindMin:
		return math.MaxInt64
	case KindMax:
		return math.MinInt64
	default:
		return 0
	}
}

// Category classifies an exported sample for the downstream reporting pipeline.
type Category string

const (
	// CategoryCounter marks samples produced from classification counters.
	CategoryCounter Category = "counter"
	// CategoryRT marks samples produced from response-time stat containers.
	CategoryRT Category = "rt"
)

// MetricKey names one metric series and carries its human-readable description.
type MetricKey struct {
	Name string
	Desc string
}

// Response-time metric keys. Each operation type gets one container per key.
var (
	RTLast = MetricKey{Name: "rt.milliseconds.last", Desc: "Last Response Time"}
	RTMin  = MetricKey{Name: "rt.milliseconds.min", Desc: "Min Response Time"}
	RTMax  = MetricKey{Name: "rt.milliseconds.max", Desc: "Max Response Time"}
	RTSum  = MetricKey{Name: "rt.milliseconds.sum", Desc: "Sum Response Time"}
	RTAvg  = MetricKey{Name: "rt.milliseconds.avg", Desc: "Average Response Time"}
)

// KeyWrapper identifies a specific statistic series: a metric key, optionally
// crossed with the operation type it was recorded under.
type KeyWrapper struct {
	OpType string
	Metric MetricKey
}

// TargetKey renders the full export key of the series.
func (w KeyWrapper) TargetKey() string {
	if w.OpType == "" {
		return w.Metric.Name
	}
	return w.OpType + "." + w.Metric.Name
}

// TargetDesc renders the human-readable description of the series.
func (w KeyWrapper) TargetDesc() string {
	if w.OpType == "" {
		return w.Metric.Desc
	}
	return fmt.Sprintf("%s of %s", w.Metric.Desc, w.OpType)
}

// ClassKey describes one classification bucket of the counter registry.
// The set of classification keys is fixed external configuration: it is
// supplied once at construction and never changes for the process lifetime.
type ClassKey struct {
	Name string
	Desc string
}
