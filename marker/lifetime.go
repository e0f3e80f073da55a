package marker

// Lifetime controls how the host container instantiates a registered service.
// The value is carried through to the registry verbatim; resolution semantics
// belong to the container, not to autobind.
type Lifetime int

const (
	// Transient creates a new instance on every resolution.
	Transient Lifetime = iota

	// Scoped creates one instance per logical unit of work (scope).
	Scoped

	// Singleton creates a single instance for the process lifetime.
	Singleton
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Scoped:
		return "scoped"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// ParseLifetime converts a lifetime name to its Lifetime value.
// Returns false if the name is not a known lifetime.
func ParseLifetime(name string) (Lifetime, bool) {
	switch name {
	case "transient":
		return Transient, true
	case "scoped":
		return Scoped, true
	case "singleton":
		return Singleton, true
	default:
		return Transient, false
	}
}
