package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"govctl/internal/config"
)

// GoTool is the logical name looked up in the alternate-tools map.
const GoTool = "go"

// Resolved is the effective toolchain location computed from one
// configuration snapshot.
type Resolved struct {
	Root   string // install root, parent of BinDir for standard layouts
	BinDir string // directory that must lead PATH
	GoBin  string // toolchain executable
}

// systemRoots are fixed install locations probed when nothing is
// configured and the binary is not already on PATH.
var systemRoots = []string{"/usr/local/go", "/opt/go", `C:\Go`}

// defaultRoots prepends $HOME/go to systemRoots, expanding the home
// directory at lookup time.
func defaultRoots() []string {
	var roots []string
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		roots = append(roots, filepath.Join(home, "go"))
	}
	return append(roots, systemRoots...)
}

// Resolve computes the effective toolchain from cfg, in precedence order:
// explicit root override, alternate-tools mapping, default discovery.
// Returns *ConfigurationError when no layer yields an executable binary.
func Resolve(cfg config.Config) (Resolved, error) {
	if cfg.Root != "" {
		bin := filepath.Join(cfg.Root, "bin", binName(GoTool))
		if !isExecutable(bin) {
			return Resolved{}, &ConfigurationError{Reason: "configured root has no " + binName(GoTool) + " binary: " + cfg.Root}
		}
		return Resolved{Root: cfg.Root, BinDir: filepath.Dir(bin), GoBin: bin}, nil
	}

	if alt := cfg.AlternateTools[GoTool]; alt != "" {
		if !isExecutable(alt) {
			return Resolved{}, &ConfigurationError{Reason: "alternate tool is not executable: " + alt}
		}
		return fromBinary(alt), nil
	}

	if p, err := exec.LookPath(binName(GoTool)); err == nil && p != "" {
		if abs, aerr := filepath.Abs(p); aerr == nil {
			p = abs
		}
		return fromBinary(p), nil
	}
	for _, root := range defaultRoots() {
		bin := filepath.Join(root, "bin", binName(GoTool))
		if isExecutable(bin) {
			return Resolved{Root: root, BinDir: filepath.Dir(bin), GoBin: bin}, nil
		}
	}
	return Resolved{}, &ConfigurationError{Reason: "no go toolchain found via config, PATH, or known install locations"}
}

// fromBinary derives the root from a binary path: for the standard
// <root>/bin/<tool> layout the root is the bin dir's parent; otherwise the
// binary's directory serves as both root and bin dir.
func fromBinary(bin string) Resolved {
	dir := filepath.Dir(bin)
	root := dir
	if filepath.Base(dir) == "bin" {
		root = filepath.Dir(dir)
	}
	return Resolved{Root: root, BinDir: dir, GoBin: bin}
}

func binName(tool string) string {
	if runtime.GOOS == "windows" {
		return tool + ".exe"
	}
	return tool
}

func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return fi.Mode().Perm()&0o111 != 0
}
