// Package build provides variables that are set at build-time
// with the -X ldflag. If the values are not given at build-time,
// they will be determined from [debug.BuildInfo].
//
//	go build -ldflags "-X github.com/lone-faerie/unitconv/internal/build.version=v1.0.0"
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	pkg       string
	version   string
	buildTime string
)

var once sync.Once

var semverRegexp = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRegexp.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func readBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if pkg == "" {
		pkg = info.Main.Path
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.time" {
				if t, ok := strings.CutSuffix(s.Value, "Z"); ok {
					buildTime = t + "+00:00"
				} else {
					buildTime = s.Value
				}
				break
			}
		}
	}
}

// Package returns the main package path.
func Package() string {
	once.Do(load)
	return pkg
}

// Version returns the version of the main module, e.g. "v1.2.0".
func Version() string {
	once.Do(load)
	return version
}

// BuildTime returns the time of the commit the binary was built from.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
