/*
File   : langfront/version/version.go
Package: version

Package version exposes the build-time version stamp implementing spec.md
§6's `version() → string` entry point. It generalizes the teacher's
main/main.go hardcoded `VERSION = "v1.0.0"` constant (threaded into
repl.NewRepl's banner) into a proper ldflags-overridable variable, per
spec.md §1's note that version-stamping is a config concern external to the
compiler stages themselves.
*/
package version

// Version is the build-time version stamp. It defaults to "dev" for local
// builds and is overridden at release build time via:
//
//	go build -ldflags "-X github.com/akashmaji946/langfront/version.Version=1.2.3"
var Version = "dev"

// String returns the current version stamp, implementing spec.md §6's
// `version() → string` entry point.
func String() string {
	return Version
}
