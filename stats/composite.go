package stats

// Spec fixes the shape of a Composite at construction: its classification
// buckets, its operation types and the tag functions applied at export.
// The enumerations are treated as external configuration and are immutable
// for the process lifetime.
type Spec struct {
	// AppClasses are the application-level classification buckets.
	AppClasses []ClassKey
	// ServiceClasses are the service-level classification buckets.
	ServiceClasses []ClassKey
	// AppOpTypes are the operation types tracked per application.
	AppOpTypes []string
	// ServiceOpTypes are the operation types tracked per (application, service).
	ServiceOpTypes []string
	// AppTags overrides the tag set attached to application samples.
	// Defaults to AppTags.
	AppTags TagFunc[string]
	// SvcTags overrides the tag set attached to service samples.
	// Defaults to ServiceTags.
	SvcTags TagFunc[ServiceEntity]
}

// Composite is the process-wide aggregation engine. It owns every map and
// accumulator underneath it; writers and the export pipeline share one
// instance, constructed once by the hosting process and passed by handle.
// No operation on it blocks or suspends.
type Composite struct {
	appCounters *Registry[string]
	svcCounters *Registry[ServiceEntity]
	appRT       *RTStats[string]
	svcRT       *RTStats[ServiceEntity]
	appTags     TagFunc[string]
	svcTags     TagFunc[ServiceEntity]
}

var _ Exporter = (*Composite)(nil)

// New constructs a Composite from the given spec.
func New(spec Spec) *Composite {
	c := &Composite{
		appCounters: NewRegistry[string](spec.AppClasses...),
		svcCounters: NewRegistry[ServiceEntity](spec.ServiceClasses...),
		appRT:       NewRTStats[string](spec.AppOpTypes...),
		svcRT:       NewRTStats[ServiceEntity](spec.ServiceOpTypes...),
		appTags:     spec.AppTags,
		svcTags:     spec.SvcTags,
	}
	if c.appTags == nil {
		c.appTags = AppTags
	}
	if c.svcTags == nil {
		c.svcTags = ServiceTags
	}
	return c
}

// Incr adds 1 to the application counter for app within the given bucket.
func (c *Composite) Incr(class ClassKey, app string) {
	c.IncrBy(class, app, 1)
}

// IncrBy adds amount to the application counter for app within the given bucket.
func (c *Composite) IncrBy(class ClassKey, app string, amount int64) {
	c.appCounters.Incr(class, app, amount)
}

// IncrService adds amount to the service counter for (app, serviceKey)
// within the given bucket.
func (c *Composite) IncrService(class ClassKey, app, serviceKey string, amount int64) {
	c.svcCounters.Incr(class, ServiceEntity{App: app, Service: serviceKey}, amount)
}

// RecordAppRT feeds one response-time observation for an application into
// all containers matching the operation type.
func (c *Composite) RecordAppRT(app string, op string, elapsedMillis int64) {
	c.appRT.Record(op, app, elapsedMillis)
}

// RecordServiceRT feeds one response-time observation for a service into
// all containers matching the operation type.
func (c *Composite) RecordServiceRT(app, serviceKey string, op string, elapsedMillis int64) {
	c.svcRT.Record(op, ServiceEntity{App: app, Service: serviceKey}, elapsedMillis)
}

// ExportCounterSamples implements Exporter.
func (c *Composite) ExportCounterSamples() []Sample {
	return c.appCounters.Samples(c.appTags)
}

// ExportServiceCounterSamples implements Exporter.
func (c *Composite) ExportServiceCounterSamples() []Sample {
	return c.svcCounters.Samples(c.svcTags)
}

// ExportRTSamples implements Exporter. Application samples precede service
// samples; within each, containers appear in construction order.
func (c *Composite) ExportRTSamples() []Sample {
	out := c.appRT.Samples(c.appTags)
	return append(out, c.svcRT.Samples(c.svcTags)...)
}
