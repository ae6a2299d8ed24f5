// Package version exposes the tool's build metadata, injected at link time.
package version

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"
	// Commit is the git commit hash (set by build flags)
	Commit = "unknown"
	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// Get returns the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}

// String returns the bare version.
func (i Info) String() string {
	return i.Version
}

// Full returns the version with commit and build date appended.
func (i Info) Full() string {
	return i.Version + " (" + i.Commit + ", built " + i.BuildDate + ")"
}
