// Package settings holds build metadata and the options of a single CLI run.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "dispval"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the settings of one invocation, resolved from flags.
type Run struct {
	MinLogLevel int8
	// LogFile receives log output instead of stderr. The preview needs it
	// because the terminal belongs to the program.
	LogFile    string
	ConfigPath string
	Theme      string
	NoColor    bool
	// Width is the render width in cells; 0 means detect.
	Width int
}

// NewCliParams returns the settings a CLI run starts from.
func NewCliParams() *Run {
	return &Run{Theme: "dark"}
}
