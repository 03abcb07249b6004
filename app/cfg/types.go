package cfg

type Cfg struct {
	// HTTP configuration
	Port         string
	APIAccessKey string

	// Extension environment
	SettingsFile string
	ColorScheme  string
	Languages    []string

	// One-shot resolution
	InputFile string
	InputKind string

	// Application metadata
	Debug   bool
	Version string
}

// ServeMode reports whether the binary should run the HTTP server rather than
// resolve a single input document.
func (c *Cfg) ServeMode() bool {
	return c.InputFile == ""
}
