// Package envpath owns the process-wide toolchain environment: it runs
// the resolve → probe → indicate cycle and keeps the resolved bin
// directory at the front of PATH. All PATH and indicator mutation goes
// through one Updater so cycles never race.
package envpath

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"govctl/internal/config"
	"govctl/internal/statusbar"
	"govctl/internal/system"
	"govctl/internal/toolchain"
)

// ErrCycleInFlight is returned when Apply is called while another cycle
// is still running. Callers retry after the in-flight cycle finishes.
var ErrCycleInFlight = errors.New("environment update already in progress")

// State is the updater's position in its cycle.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateProbing
	StateUpdating
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateProbing:
		return "probing"
	case StateUpdating:
		return "updating"
	default:
		return "idle"
	}
}

// Environment is the active {root, bin dir, version} triple after a
// successful cycle.
type Environment struct {
	toolchain.Resolved
	Version toolchain.Version
}

// Updater orchestrates resolver, prober, and indicator, and rewrites
// PATH. One cycle runs at a time; overlapping Apply calls are rejected
// with ErrCycleInFlight.
type Updater struct {
	mu       sync.Mutex
	runner   toolchain.Runner
	ind      *statusbar.Indicator
	state    atomic.Int32
	inserted []string // PATH entries this updater added
	last     *Environment
}

// New returns an updater writing to ind and spawning probes via r.
func New(ind *statusbar.Indicator, r toolchain.Runner) *Updater {
	if r == nil {
		r = toolchain.ExecRunner{}
	}
	return &Updater{runner: r, ind: ind}
}

// State reports the current cycle phase.
func (u *Updater) State() State {
	return State(u.state.Load())
}

// Last returns the most recently applied environment, if any.
func (u *Updater) Last() (Environment, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.last == nil {
		return Environment{}, false
	}
	return *u.last, true
}

// Apply runs one full cycle against the given configuration snapshot.
// On failure the typed error is returned, the indicator keeps a prior
// good version (or shows not-found when there has never been one), and
// PATH mutations from earlier successful cycles stay intact.
func (u *Updater) Apply(ctx context.Context, cfg config.Config) (Environment, error) {
	if !u.mu.TryLock() {
		return Environment{}, ErrCycleInFlight
	}
	defer func() {
		u.state.Store(int32(StateIdle))
		u.mu.Unlock()
	}()

	u.state.Store(int32(StateResolving))
	res, err := toolchain.Resolve(cfg)
	if err != nil {
		return Environment{}, u.fail(err)
	}

	u.state.Store(int32(StateProbing))
	pctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()
	ver, err := toolchain.Probe(pctx, u.runner, res.GoBin)
	if err != nil {
		return Environment{}, u.fail(err)
	}

	u.state.Store(int32(StateUpdating))
	entries := splice(Current(), res.BinDir, u.inserted)
	if err := commit(entries); err != nil {
		return Environment{}, u.fail(err)
	}
	u.inserted = []string{res.BinDir}
	u.ind.Update(ver)

	env := Environment{Resolved: res, Version: ver}
	u.last = &env
	system.Logger.Debug("toolchain environment applied", "root", res.Root, "version", ver.String())
	return env, nil
}

// fail surfaces err without committing partial state. Stale-but-valid
// indicator text is kept; with no prior success the explicit not-found
// state is shown instead of a blank element.
func (u *Updater) fail(err error) error {
	if u.last == nil {
		u.ind.SetNotFound()
	}
	return err
}
