package stats

// Well-known tag names attached to exported samples.
const (
	// TagApplicationName labels a sample with the application it measures.
	TagApplicationName = "application_name"
	// TagServiceKey labels a sample with the service key it measures.
	TagServiceKey = "service_key"
)

// ServiceEntity identifies a service-level statistic: an application name
// combined with a service key. It is comparable and usable as a map key.
type ServiceEntity struct {
	App     string
	Service string
}

// TagFunc maps an entity identity to the tag set attached to its samples.
// It decouples aggregation from export-format concerns; implementations must
// return a fresh map on every call.
type TagFunc[E comparable] func(e E) map[string]string

// AppTags is the default TagFunc for application entities.
func AppTags(app string) map[string]string {
	return map[string]string{TagApplicationName: app}
}

// ServiceTags is the default TagFunc for service entities.
func ServiceTags(e ServiceEntity) map[string]string {
	return map[string]string{
		TagApplicationName: e.App,
		TagServiceKey:      e.Service,
	}
}
