package config

// Valid registration policies.
var validPolicies = map[string]bool{
	"":           true, // Empty defaults to marker
	"marker":     true,
	"convention": true,
}

// Valid logging levels.
var validLogLevels = map[string]bool{
	"":         true, // Empty defaults to info
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

// Valid logging formats.
var validLogFormats = map[string]bool{
	"":        true, // Empty defaults to console auto-detection
	"json":    true,
	"console": true,
	"pretty":  true,
}

// Validate checks the configuration for correctness.
// Returns a ValidationError listing every problem found, or nil.
func (c *Config) Validate() error {
	verr := &ValidationError{}

	if !validPolicies[c.Registration.Policy] {
		verr.Addf("registration: unknown policy %q (valid: marker, convention)", c.Registration.Policy)
	}
	if c.Registration.Workers < 0 {
		verr.Addf("registration: workers must be >= 0, got %d", c.Registration.Workers)
	}
	for _, m := range c.Registration.Modules {
		if m == "" {
			verr.Addf("registration: module names must not be empty")
			break
		}
	}

	if !validLogLevels[c.Logging.Level] {
		verr.Addf("logging: unknown level %q (valid: debug, info, warn, error)", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		verr.Addf("logging: unknown format %q (valid: json, console, pretty)", c.Logging.Format)
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
