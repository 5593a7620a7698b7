package stats

// RTStats is the ordered collection of response-time stat containers for a
// fixed set of operation types. Five containers are built per operation
// type at construction (last, min, max, sum and a derived average) sharing
// one entity domain; the set never changes afterwards.
type RTStats[E comparable] struct {
	containers []*Container[E]
}

// NewRTStats builds the container set for the given operation types.
func NewRTStats[E comparable](opTypes ...string) *RTStats[E] {
	s := &RTStats[E]{}
	for _, op := range opTypes {
		s.containers = append(s.containers, s.initOpStats(op)...)
	}
	return s
}

// initOpStats builds the five containers of one operation type. The average
// container stores an observation count and reads as sum/count, resolving
// the sibling sum container by key at read time.
func (s *RTStats[E]) initOpStats(op string) []*Container[E] {
	last := NewContainer[E](KeyWrapper{OpType: op, Metric: RTLast}, KindLast)
	min := NewContainer[E](KeyWrapper{OpType: op, Metric: RTMin}, KindMin)
	max := NewContainer[E](KeyWrapper{OpType: op, Metric: RTMax}, KindMax)
	sum := NewContainer[E](KeyWrapper{OpType: op, Metric: RTSum}, KindSum)

	avg := NewContainer[E](KeyWrapper{OpType: op, Metric: RTAvg}, KindCount)
	avg.setRead(func(e E, cnt *Accumulator) int64 {
		n := cnt.Load()
		if n == 0 {
			// The entry exists but no combine has landed yet; report 0
			// rather than divide by the zero count.
			return 0
		}
		sumContainer := s.find(op, RTSum)
		return sumContainer.GetOrCreate(e).Load() / n
	})

	return []*Container[E]{last, min, max, sum, avg}
}

// find returns the container for (op, metric), or nil if the operation type
// was not configured.
func (s *RTStats[E]) find(op string, metric MetricKey) *Container[E] {
	for _, c := range s.containers {
		if c.key.OpType == op && c.key.Metric == metric {
			return c
		}
	}
	return nil
}

// Record feeds one observed elapsed time (milliseconds) into every
// container tracking the given operation type. The average container's
// combine increments its count and ignores the elapsed value. An
// unconfigured operation type matches no container and is a no-op.
func (s *RTStats[E]) Record(op string, e E, elapsedMillis int64) {
	for _, c := range s.containers {
		if !c.SpecifyType(op) {
			continue
		}
		c.Combine(e, elapsedMillis)
	}
}

// Samples materializes one sample per container and tracked entity. Average
// values trigger the sum/count lookup at this instant.
func (s *RTStats[E]) Samples(tags TagFunc[E]) []Sample {
	var out []Sample
	for _, c := range s.containers {
		out = append(out, c.Samples(CategoryRT, tags)...)
	}
	return out
}
