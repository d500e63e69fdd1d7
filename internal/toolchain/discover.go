package toolchain

import (
	"os/exec"
	"path/filepath"
	"sort"

	"govctl/internal/config"
)

// Candidates lists every toolchain the current machine and configuration
// could select: the configured root, alternate tools, the PATH binary, and
// known install locations. Used by the interactive picker. Deduplicated by
// binary path; order follows resolution precedence.
func Candidates(cfg config.Config) []Option {
	seen := map[string]bool{}
	var out []Option
	add := func(label, bin string) {
		if bin == "" || seen[bin] || !isExecutable(bin) {
			return
		}
		seen[bin] = true
		out = append(out, Option{Label: label, BinPath: bin})
	}

	if cfg.Root != "" {
		add("configured root ("+cfg.Root+")", filepath.Join(cfg.Root, "bin", binName(GoTool)))
	}
	names := make([]string, 0, len(cfg.AlternateTools))
	for name := range cfg.AlternateTools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		add("alternate tool "+name, cfg.AlternateTools[name])
	}
	if p, err := exec.LookPath(binName(GoTool)); err == nil {
		if abs, aerr := filepath.Abs(p); aerr == nil {
			p = abs
		}
		add("on PATH", p)
	}
	for _, root := range defaultRoots() {
		add(root, filepath.Join(root, "bin", binName(GoTool)))
	}
	return out
}
