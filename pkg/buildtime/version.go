package buildtime

// set by ldflags:
//
//	go build -ldflags "-X github.com/opst/extlite/pkg/buildtime.version=v1.0.0 -X github.com/opst/extlite/pkg/buildtime.revision=$(git rev-parse HEAD)"
var (
	version  = "dev"
	revision = "unknown"
)

// version string when this extlite has been built.
func VERSION() string {
	return version
}

func GIT_REVISION() string {
	return revision
}

func VersionString() string {
	return version + " (commit: " + revision + ")"
}
