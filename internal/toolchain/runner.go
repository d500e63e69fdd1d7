package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Runner spawns a toolchain binary and captures its output. It exists as
// an interface so tests can substitute a fake instead of real processes.
type Runner interface {
	Run(ctx context.Context, bin string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, bin string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	// Avoid opening pager or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", "", ctx.Err()
	}
	return out.String(), errb.String(), err
}
