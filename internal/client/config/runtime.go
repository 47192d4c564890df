// Package config holds the runtime configuration snapshot: an
// immutable value replaced wholesale on update, never mutated field by
// field, so concurrent readers can never see a partially merged config.
package config

import (
	"sync"
	"time"

	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// FeatureFlag names a backend-toggleable feature.
type FeatureFlag string

const (
	FlagShuffleCues      FeatureFlag = "shuffle_cues"
	FlagRecordingReports FeatureFlag = "recording_reports"
	FlagDeveloperConsole FeatureFlag = "developer_console"
)

// Build defaults, used until a fresher snapshot arrives from the
// backend.
const (
	DefaultMagicLinkCooldown = 60 * time.Second
	DefaultCuesPageSize      = 20
)

// Snapshot is one immutable runtime configuration. Treat every field
// as read-only; replace the whole value to change anything.
type Snapshot struct {
	MagicLinkCooldown time.Duration
	CuesPageSize      int
	Flags             map[FeatureFlag]bool
}

// Enabled reports whether the flag is on in this snapshot.
func (s Snapshot) Enabled(flag FeatureFlag) bool {
	return s.Flags[flag]
}

// DefaultSnapshot returns the build-default configuration.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		MagicLinkCooldown: DefaultMagicLinkCooldown,
		CuesPageSize:      DefaultCuesPageSize,
		Flags:             map[FeatureFlag]bool{},
	}
}

// SnapshotFromAPI builds a snapshot from a backend config response,
// falling back to build defaults for out-of-range values.
func SnapshotFromAPI(resp *pkgapi.AppConfigResponse) Snapshot {
	s := DefaultSnapshot()

	if resp.MagicLinkCooldownSeconds >= 0 {
		s.MagicLinkCooldown = time.Duration(resp.MagicLinkCooldownSeconds) * time.Second
	}
	if resp.CuesPageSize >= 1 {
		s.CuesPageSize = resp.CuesPageSize
	}

	flags := make(map[FeatureFlag]bool, len(resp.EnabledFlags))
	for _, name := range resp.EnabledFlags {
		flags[FeatureFlag(name)] = true
	}
	s.Flags = flags

	return s
}

// Store owns the current snapshot and broadcasts every replacement.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	subs    map[int]chan Snapshot
	nextID  int
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(initial Snapshot) *Store {
	return &Store{
		current: initial,
		subs:    make(map[int]chan Snapshot),
	}
}

// Current returns the active snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace installs a new snapshot wholesale and notifies subscribers.
func (s *Store) Replace(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = snapshot
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

// Subscribe returns a channel observing snapshot replacements and a
// cancel func. The current snapshot is delivered immediately; slow
// subscribers are coalesced to the latest value.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.current
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}
