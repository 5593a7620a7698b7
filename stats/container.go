package stats

import "sync"

// readFunc overrides how an entry's exported value is computed. Derived
// containers (average) read through a function of sibling accumulators
// instead of their own stored value.
type readFunc[E comparable] func(e E, own *Accumulator) int64

// Container maps entity identities to accumulators of one kind, tagged with
// the statistic series it belongs to. Entries are created lazily on first
// observation and never removed.
type Container[E comparable] struct {
	key     KeyWrapper
	kind    Kind
	entries sync.Map // E -> *Accumulator
	read    readFunc[E]
}

// NewContainer creates an empty container for the given series and combine rule.
func NewContainer[E comparable](key KeyWrapper, kind Kind) *Container[E] {
	return &Container[E]{key: key, kind: kind}
}

// Key returns the series identity of this container.
func (c *Container[E]) Key() KeyWrapper {
	return c.key
}

// SpecifyType reports whether this container collects statistics for the
// given operation type. Callers use it to filter the active container set
// before recording.
func (c *Container[E]) SpecifyType(op string) bool {
	return c.key.OpType == op
}

// GetOrCreate returns the accumulator for e, creating it at the kind's init
// value if absent. Concurrent first-writers for the same entity observe the
// same accumulator; at most one is ever created.
func (c *Container[E]) GetOrCreate(e E) *Accumulator {
	if a, ok := c.entries.Load(e); ok {
		return a.(*Accumulator)
	}
	a, _ := c.entries.LoadOrStore(e, newAccumulator(c.kind))
	return a.(*Accumulator)
}

// Combine atomically folds sample into the entity's accumulator, creating
// it first if absent.
func (c *Container[E]) Combine(e E, sample int64) {
	c.GetOrCreate(e).Combine(sample)
}

// setRead installs a derived read function. Construction-time only; not
// safe to call once writers are active.
func (c *Container[E]) setRead(fn readFunc[E]) {
	c.read = fn
}

// value computes the exported value of one entry at this instant.
func (c *Container[E]) value(e E, a *Accumulator) int64 {
	if c.read != nil {
		return c.read(e, a)
	}
	return a.Load()
}

// Range walks the container's current entries, yielding each entity and its
// read value. Entries added concurrently may or may not be visited; entries
// are never visited twice.
func (c *Container[E]) Range(fn func(e E, value int64)) {
	c.entries.Range(func(k, v any) bool {
		e := k.(E)
		fn(e, c.value(e, v.(*Accumulator)))
		return true
	})
}

// Samples materializes one sample per tracked entity, reading each value at
// the instant it is visited.
func (c *Container[E]) Samples(category Category, tags TagFunc[E]) []Sample {
	var out []Sample
	c.Range(func(e E, value int64) {
		out = append(out, Sample{
			Key:      c.key.TargetKey(),
			Desc:     c.key.TargetDesc(),
			Tags:     tags(e),
			Category: category,
			Value:    value,
		})
	})
	return out
}
