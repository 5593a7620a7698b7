package stats

// Registry is a fixed set of classification buckets, each holding additive
// counters keyed by entity identity. Buckets are created exactly once at
// construction and never removed; counters within a bucket are created
// lazily at zero on first increment.
type Registry[E comparable] struct {
	buckets map[ClassKey]*Container[E]
	order   []ClassKey
}

// NewRegistry builds one bucket per classification key. Duplicate keys are
// collapsed into a single bucket.
func NewRegistry[E comparable](classes ...ClassKey) *Registry[E] {
	r := &Registry[E]{buckets: make(map[ClassKey]*Container[E], len(classes))}
	for _, ck := range classes {
		if _, ok := r.buckets[ck]; ok {
			continue
		}
		r.buckets[ck] = NewContainer[E](KeyWrapper{Metric: MetricKey(ck)}, KindSum)
		r.order = append(r.order, ck)
	}
	return r
}

// Incr atomically adds amount to the counter for e within the given bucket,
// creating the counter at zero first if absent. An unknown classification
// key is silently ignored so that misconfiguration at the boundary cannot
// crash the hot path.
func (r *Registry[E]) Incr(class ClassKey, e E, amount int64) {
	b, ok := r.buckets[class]
	if !ok {
		return
	}
	b.Combine(e, amount)
}

// Samples materializes one sample per (bucket, entity) pair with the
// counter's current value, in bucket construction order.
func (r *Registry[E]) Samples(tags TagFunc[E]) []Sample {
	var out []Sample
	for _, ck := range r.order {
		out = append(out, r.buckets[ck].Samples(CategoryCounter, tags)...)
	}
	return out
}
