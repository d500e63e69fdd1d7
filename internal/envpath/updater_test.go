package envpath

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"govctl/internal/config"
	"govctl/internal/statusbar"
	tu "govctl/internal/testutil"
	"govctl/internal/toolchain"
)

// scriptRunner maps binary paths to canned stdout; no real processes.
type scriptRunner struct {
	out   map[string]string
	calls []string
}

func (r *scriptRunner) Run(ctx context.Context, bin string, args ...string) (string, string, error) {
	r.calls = append(r.calls, bin)
	if out, ok := r.out[bin]; ok {
		return out, "", nil
	}
	return "", "", fmt.Errorf("unexpected binary: %s", bin)
}

// blockingRunner parks until released, to exercise overlapping cycles.
type blockingRunner struct {
	started chan struct{}
	release chan struct{}
}

func (r *blockingRunner) Run(ctx context.Context, bin string, args ...string) (string, string, error) {
	r.started <- struct{}{}
	<-r.release
	return "go version go2.0.0 linux/amd64\n", "", nil
}

func writeExe(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func newRoot(t *testing.T) (root, bin string) {
	t.Helper()
	root = t.TempDir()
	bin = filepath.Join(root, "bin", "go")
	writeExe(t, bin)
	return root, bin
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("executable fixtures are POSIX scripts")
	}
}

func pathEntries() []string { return Current() }

func countEntry(entries []string, dir string) int {
	n := 0
	for _, e := range entries {
		if e == dir {
			n++
		}
	}
	return n
}

func TestApplySetsPathHeadAndIndicator(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root, bin := newRoot(t)

	ind := statusbar.New()
	u := New(ind, &scriptRunner{out: map[string]string{bin: "go version go2.0.0 darwin/amd64\n"}})

	env, err := u.Apply(context.Background(), config.Config{Root: root})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if env.Version.String() != "2.0.0" {
		t.Fatalf("version = %s", env.Version)
	}
	if ind.Text() != "Go 2.0.0" {
		t.Fatalf("indicator = %q", ind.Text())
	}
	if got, want := First(), filepath.Join(root, "bin"); got != want {
		t.Fatalf("PATH[0] = %s, want %s", got, want)
	}
	if u.State() != StateIdle {
		t.Fatalf("state = %v after Apply", u.State())
	}
}

func TestApplyIdempotent(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root, bin := newRoot(t)
	binDir := filepath.Join(root, "bin")

	ind := statusbar.New()
	u := New(ind, &scriptRunner{out: map[string]string{bin: "go version go2.0.0 darwin/amd64\n"}})
	cfg := config.Config{Root: root}

	if _, err := u.Apply(context.Background(), cfg); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	first := First()
	if _, err := u.Apply(context.Background(), cfg); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if First() != first {
		t.Fatalf("PATH[0] changed: %s -> %s", first, First())
	}
	if n := countEntry(pathEntries(), binDir); n != 1 {
		t.Fatalf("bin dir appears %d times in PATH, want 1", n)
	}
}

func TestApplySwitchRemovesPriorInsert(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	rootA, binA := newRoot(t)
	rootB, binB := newRoot(t)

	r := &scriptRunner{out: map[string]string{
		binA: "go version go1.21.0 linux/amd64\n",
		binB: "go version go1.22.3 linux/amd64\n",
	}}
	ind := statusbar.New()
	u := New(ind, r)

	if _, err := u.Apply(context.Background(), config.Config{Root: rootA}); err != nil {
		t.Fatalf("Apply A: %v", err)
	}
	if _, err := u.Apply(context.Background(), config.Config{Root: rootB}); err != nil {
		t.Fatalf("Apply B: %v", err)
	}
	entries := pathEntries()
	if entries[0] != filepath.Join(rootB, "bin") {
		t.Fatalf("PATH[0] = %s", entries[0])
	}
	if n := countEntry(entries, filepath.Join(rootA, "bin")); n != 0 {
		t.Fatalf("stale entry for old root still present (%d times)", n)
	}
	if ind.Text() != "Go 1.22.3" {
		t.Fatalf("indicator = %q", ind.Text())
	}
}

func TestApplyAlternateTool(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root := t.TempDir()
	alt := filepath.Join(root, "bin", "go3")
	writeExe(t, alt)

	r := &scriptRunner{out: map[string]string{alt: "go version go3.0.0 darwin/amd64\n"}}
	ind := statusbar.New()
	u := New(ind, r)

	cfg := config.Config{AlternateTools: map[string]string{"go": alt}}
	if _, err := u.Apply(context.Background(), cfg); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != alt {
		t.Fatalf("probe used %v, want %s", r.calls, alt)
	}
	if ind.Text() != "Go 3.0.0" {
		t.Fatalf("indicator = %q", ind.Text())
	}
	if got, want := First(), filepath.Join(root, "bin"); got != want {
		t.Fatalf("PATH[0] = %s, want %s", got, want)
	}
}

func TestApplyFailureKeepsLastGood(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root, bin := newRoot(t)

	ind := statusbar.New()
	u := New(ind, &scriptRunner{out: map[string]string{bin: "go version go2.0.0 darwin/amd64\n"}})

	if _, err := u.Apply(context.Background(), config.Config{Root: root}); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	before := os.Getenv("PATH")

	_, err := u.Apply(context.Background(), config.Config{Root: filepath.Join(root, "missing")})
	var cerr *toolchain.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
	if os.Getenv("PATH") != before {
		t.Fatal("failed cycle must not touch PATH")
	}
	if ind.Text() != "Go 2.0.0" {
		t.Fatalf("indicator should stay stale-but-valid, got %q", ind.Text())
	}
}

func TestApplyFailureWithoutPriorSuccess(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()

	ind := statusbar.New()
	u := New(ind, &scriptRunner{})

	_, err := u.Apply(context.Background(), config.Config{Root: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error")
	}
	if ind.Text() != "Go (not found)" {
		t.Fatalf("indicator = %q, want explicit not-found state", ind.Text())
	}
	if !strings.HasPrefix(ind.Text(), "Go") {
		t.Fatalf("indicator %q lacks Go prefix", ind.Text())
	}
}

func TestApplyProbeErrorSurfaces(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root, _ := newRoot(t)

	// scriptRunner has no entry for this binary: probe fails
	ind := statusbar.New()
	u := New(ind, &scriptRunner{})
	before := os.Getenv("PATH")

	_, err := u.Apply(context.Background(), config.Config{Root: root})
	var perr *toolchain.ProbeError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ProbeError, got %T: %v", err, err)
	}
	if os.Getenv("PATH") != before {
		t.Fatal("failed cycle must not touch PATH")
	}
}

func TestApplyRejectsOverlappingCycle(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root, _ := newRoot(t)

	r := &blockingRunner{started: make(chan struct{}), release: make(chan struct{})}
	ind := statusbar.New()
	u := New(ind, r)
	cfg := config.Config{Root: root, ProbeTimeout: 10 * time.Second}

	done := make(chan error, 1)
	go func() {
		_, err := u.Apply(context.Background(), cfg)
		done <- err
	}()
	<-r.started

	if _, err := u.Apply(context.Background(), cfg); !errors.Is(err, ErrCycleInFlight) {
		t.Fatalf("expected ErrCycleInFlight, got %v", err)
	}
	if u.State() != StateProbing {
		t.Fatalf("in-flight state = %v, want probing", u.State())
	}

	close(r.release)
	if err := <-done; err != nil {
		t.Fatalf("first cycle failed: %v", err)
	}
}

func TestApplyWithExecRunner(t *testing.T) {
	skipOnWindows(t)
	defer tu.WithEnv(t, "PATH", os.Getenv("PATH"))()
	root := t.TempDir()
	bin := filepath.Join(root, "bin", "go")
	if err := os.MkdirAll(filepath.Dir(bin), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	script := "#!/bin/sh\necho 'go version go2.0.0 " + runtime.GOOS + "/" + runtime.GOARCH + "'\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	ind := statusbar.New()
	u := New(ind, toolchain.ExecRunner{})
	cfg := config.Config{Root: root, ProbeTimeout: 20 * time.Second}

	env, err := u.Apply(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if env.Version.String() != "2.0.0" {
		t.Fatalf("version = %s", env.Version)
	}
	if ind.Text() != "Go 2.0.0" {
		t.Fatalf("indicator = %q", ind.Text())
	}
	if First() != filepath.Join(root, "bin") {
		t.Fatalf("PATH[0] = %s", First())
	}
}
