package driven

// ConfigStore holds flat, dot-keyed configuration ("data.base",
// "election.runoff_date"). Typed getters return the zero value when a key
// is missing or holds another type.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int

	// GetFloat accepts integer values too.
	GetFloat(key string) float64

	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set stores and persists a value.
	Set(key string, value any) error

	Save() error
	Load() error

	// Path is where the configuration lives; empty for in-memory stores.
	Path() string
}
