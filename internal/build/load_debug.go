//go:build debug

package build

func load() {
	if pkg == "" || version == "" || buildTime == "" {
		readBuildInfo()
	}
	version = semver(version) + " (dev)"
}
