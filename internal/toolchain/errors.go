package toolchain

import "fmt"

// ConfigurationError means no configuration layer yielded an executable
// toolchain binary.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("toolchain configuration: %s: %v", e.Reason, e.Err)
	}
	return "toolchain configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ProbeError means the resolved binary could not report a usable version:
// spawn failure, non-zero exit, stderr output, or unparseable stdout.
type ProbeError struct {
	Bin    string
	Stderr string
	Err    error
}

func (e *ProbeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("probe %s: stderr: %s", e.Bin, e.Stderr)
	}
	return fmt.Sprintf("probe %s: %v", e.Bin, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }
