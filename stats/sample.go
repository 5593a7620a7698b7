package stats

// Sample is one exported metric value: an immutable record computed at
// export time with no live reference back into the aggregator. The tag map
// is freshly built per sample and may be retained by the consumer.
type Sample struct {
	Key      string
	Desc     string
	Tags     map[string]string
	Category Category
	Value    int64
}

// Exporter is the read side of the aggregation engine, handed to the
// external reporting pipeline. Export calls never mutate state and are safe
// to run concurrently with ongoing writes; each sample reflects its
// accumulator's value at the instant it was read.
type Exporter interface {
	// ExportCounterSamples walks every application-level classification
	// bucket and produces one sample per tracked application.
	ExportCounterSamples() []Sample
	// ExportServiceCounterSamples walks every service-level classification
	// bucket and produces one sample per tracked (application, service) pair.
	ExportServiceCounterSamples() []Sample
	// ExportRTSamples produces one sample per response-time container and
	// tracked entity, across all operation types.
	ExportRTSamples() []Sample
}
