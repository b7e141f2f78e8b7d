// Package buildinfo reports the folio version.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/induwarauthsara/folio/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/induwarauthsara/folio/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/induwarauthsara/folio/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with "go install" fall back to the module version and VCS
// stamp recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(info)
	}
}

// fill replaces unset variables from the toolchain's build info.
func fill(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" && len(s.Value) >= 12 {
				Commit = s.Value[:12]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Generator returns the content of the page's generator meta tag.
func Generator() string {
	return "folio " + Version
}
