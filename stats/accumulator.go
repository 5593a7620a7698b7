package stats

import "sync/atomic"

// Accumulator is a single per-entity running value with a fixed combine
// rule. All operations are lock-free: combines never lose an update and
// never block the caller.
type Accumulator struct {
	kind Kind
	v    atomic.Int64
}

func newAccumulator(kind Kind) *Accumulator {
	a := &Accumulator{kind: kind}
	a.v.Store(kind.initValue())
	return a
}

// Kind returns the accumulator's combine rule.
func (a *Accumulator) Kind() Kind {
	return a.kind
}

// Load returns the current running value.
func (a *Accumulator) Load() int64 {
	return a.v.Load()
}

// Combine folds sample into the running value under the accumulator's rule.
// Safe under unbounded concurrent callers for the same accumulator. For
// KindLast, "last" means last combine observed by the store; concurrent
// writers have no total order and no tie-break is imposed.
func (a *Accumulator) Combine(sample int64) {
	switch a.kind {
	case KindLast:
		a.v.Store(sample)
	case KindMin:
		for {
			cur := a.v.Load()
			if sample >= cur || a.v.CompareAndSwap(cur, sample) {
				return
			}
		}
	case KindMax:
		for {
			cur := a.v.Load()
			if sample <= cur || a.v.CompareAndSwap(cur, sample) {
				return
			}
		}
	case KindSum:
		a.v.Add(sample)
	case KindCount:
		a.v.Add(1)
	}
}
