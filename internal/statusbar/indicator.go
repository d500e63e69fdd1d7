package statusbar

import (
	"sync"

	"govctl/internal/toolchain"
)

// notFoundText is shown when no toolchain could be resolved. The literal
// "Go" prefix is kept in every state so the bar never goes blank.
const notFoundText = "Go (not found)"

// Format renders the indicator text for a probed version. Pure function.
func Format(v toolchain.Version) string {
	return "Go " + v.String()
}

// Indicator is the toolchain status element. It shows either the most
// recently probed version or an explicit not-found state, and remembers
// the user's toolchain selection. Safe for concurrent use.
type Indicator struct {
	mu       sync.Mutex
	text     string
	selected toolchain.Option
	hasSel   bool
}

// New returns a fresh indicator in the initial "Go" state.
func New() *Indicator {
	return &Indicator{text: "Go"}
}

// Update reflects a freshly probed version.
func (i *Indicator) Update(v toolchain.Version) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = Format(v)
}

// SetNotFound switches to the explicit not-found state.
func (i *Indicator) SetNotFound() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = notFoundText
}

// Text returns the current display text. Never empty.
func (i *Indicator) Text() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.text
}

// Select records a programmatic toolchain selection.
func (i *Indicator) Select(opt toolchain.Option) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.selected = opt
	i.hasSel = true
}

// Selected returns the current selection, if any. Reading back after
// Select yields the identical label and path.
func (i *Indicator) Selected() (toolchain.Option, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.selected, i.hasSel
}

var (
	defaultMu  sync.Mutex
	defaultInd *Indicator
)

// Default returns the process-wide indicator, creating it lazily.
func Default() *Indicator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultInd == nil {
		defaultInd = New()
	}
	return defaultInd
}

// DisposeDefault tears down the process-wide indicator. A later Default
// call creates a fresh one.
func DisposeDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultInd = nil
}
