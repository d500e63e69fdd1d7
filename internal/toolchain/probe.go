package toolchain

import (
	"context"
	"strings"
)

// Probe invokes `<bin> version` once through r and parses the reported
// version. Any non-empty stderr is fatal, even on a zero exit status.
// No retries; the caller bounds ctx with the configured timeout.
func Probe(ctx context.Context, r Runner, bin string) (Version, error) {
	stdout, stderr, err := r.Run(ctx, bin, "version")
	if err != nil {
		return Version{}, &ProbeError{Bin: bin, Stderr: strings.TrimSpace(stderr), Err: err}
	}
	if s := strings.TrimSpace(stderr); s != "" {
		return Version{}, &ProbeError{Bin: bin, Stderr: s}
	}
	v, err := ParseGoVersion(stdout)
	if err != nil {
		return Version{}, &ProbeError{Bin: bin, Err: err}
	}
	return v, nil
}
