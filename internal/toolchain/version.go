// Package toolchain reports the version of the Go toolchain whose parser
// backs the converter. Purely informational; callers that need resilience
// must guard the error themselves.
package toolchain

import (
	"fmt"
	"regexp"
	"runtime"
	"runtime/debug"
)

var versionPattern = regexp.MustCompile(`go(\d+\.\d+(?:\.\d+)?)`)

// Version returns the semantic version of the active Go toolchain, derived
// from the build info recorded in the running binary. An unparsable version
// string is an error; no fallback value is defined.
func Version() (string, error) {
	return parse(rawVersion())
}

func rawVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.GoVersion != "" {
		return info.GoVersion
	}
	return runtime.Version()
}

func parse(raw string) (string, error) {
	match := versionPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", fmt.Errorf("toolchain: cannot parse version from %q", raw)
	}
	return match[1], nil
}
