package toolchain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed toolchain version report.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Suffix   string // pre-release tag, e.g. rc1, beta2
	Platform string // os/arch from the version line
}

// goVerRe matches the first line of `go version` output, e.g.
// "go version go1.13.12 darwin/amd64" or "go version go1.22rc1 linux/arm64".
var goVerRe = regexp.MustCompile(`^go version go(\d+)\.(\d+)(?:\.(\d+))?((?:rc|beta)\d+)?\s+(\S+/\S+)`)

// ParseGoVersion parses `go version` stdout into a Version.
func ParseGoVersion(out string) (Version, error) {
	line := strings.TrimSpace(strings.SplitN(strings.TrimSpace(out), "\n", 2)[0])
	m := goVerRe.FindStringSubmatch(line)
	if m == nil {
		return Version{}, fmt.Errorf("unrecognized version output: %q", line)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch := 0
	if m[3] != "" {
		patch, _ = strconv.Atoi(m[3])
	}
	return Version{
		Major:    major,
		Minor:    minor,
		Patch:    patch,
		Suffix:   m[4],
		Platform: m[5],
	}, nil
}

// String renders major.minor.patch, with the pre-release suffix when present.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Suffix != "" {
		s += v.Suffix
	}
	return s
}
