package envpath

import (
	"os"
	"strings"
)

// Name of the process search-path variable. os.Getenv/Setenv handle the
// case-insensitive lookup on Windows.
const pathVar = "PATH"

// Current returns the process PATH split into entries.
func Current() []string {
	v := os.Getenv(pathVar)
	if v == "" {
		return nil
	}
	return strings.Split(v, string(os.PathListSeparator))
}

// First returns the first PATH entry, or "" when PATH is empty.
func First() string {
	if e := Current(); len(e) > 0 {
		return e[0]
	}
	return ""
}

// splice removes every occurrence of dir and of previously inserted
// entries, then prepends dir. Returns the new entry list; the caller
// commits it via os.Setenv so a failed cycle never half-writes PATH.
func splice(entries []string, dir string, inserted []string) []string {
	drop := map[string]bool{dir: true}
	for _, e := range inserted {
		drop[e] = true
	}
	out := make([]string, 0, len(entries)+1)
	out = append(out, dir)
	for _, e := range entries {
		if !drop[e] {
			out = append(out, e)
		}
	}
	return out
}

func commit(entries []string) error {
	return os.Setenv(pathVar, strings.Join(entries, string(os.PathListSeparator)))
}
