package gate

import "fmt"

// Release version of this module. Builds of an untagged commit carry the
// "-dev" suffix.
const (
	VersionMajor  = 0
	VersionMinor  = 1
	VersionPatch  = 0
	VersionSuffix = "-dev"
)

// GitCommit is the commit hash of the build, set with
// -ldflags "-X github.com/iov-one/gate.GitCommit=...".
var GitCommit = ""

// Version returns the release version followed by the commit hash when it
// is known, for example "v0.1.0-dev 1a2b3c".
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", VersionMajor, VersionMinor, VersionPatch, VersionSuffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
