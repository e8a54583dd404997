// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

// Build is one retained generation result
type Build struct {
	ID        string                  `json:"id"`
	ProjectID string                  `json:"projectId"`
	Files     []builder.GeneratedFile `json:"-"`
	Digest    string                  `json:"digest"`
	Skipped   int                     `json:"skippedAssets"`
	Duration  time.Duration           `json:"duration"`
	CreatedAt time.Time               `json:"createdAt"`
}

// File returns the generated file at path
func (b *Build) File(path string) (builder.GeneratedFile, bool) {
	for _, f := range b.Files {
		if f.Path == path {
			return f, true
		}
	}
	return builder.GeneratedFile{}, false
}

// BuildsStore keeps recent builds in memory, bounded by age and count
type BuildsStore struct {
	builds     map[string]*Build
	order      []string // insertion order, oldest first
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	mu         sync.RWMutex
}

// NewBuildsStore creates a new build store. A ttl or maxEntries of zero or
// less disables that bound.
func NewBuildsStore(ttl time.Duration, maxEntries int) *BuildsStore {
	return &BuildsStore{
		builds:     make(map[string]*Build),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Put stores a build under a fresh ULID, evicting the oldest entries beyond capacity
func (bs *BuildsStore) Put(build *Build) string {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	build.ID = ulid.Make().String()
	build.CreatedAt = bs.now()
	bs.builds[build.ID] = build
	bs.order = append(bs.order, build.ID)

	if bs.maxEntries > 0 {
		for len(bs.order) > bs.maxEntries {
			delete(bs.builds, bs.order[0])
			bs.order = bs.order[1:]
		}
	}
	return build.ID
}

// Get retrieves a build that has not expired
func (bs *BuildsStore) Get(id string) (*Build, bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	build, exists := bs.builds[id]
	if !exists || bs.expired(build) {
		return nil, false
	}
	return build, true
}

// List returns live builds, newest first
func (bs *BuildsStore) List() []*Build {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	out := make([]*Build, 0, len(bs.order))
	for i := len(bs.order) - 1; i >= 0; i-- {
		if build := bs.builds[bs.order[i]]; !bs.expired(build) {
			out = append(out, build)
		}
	}
	return out
}

// PurgeExpired drops expired builds and returns how many were removed
func (bs *BuildsStore) PurgeExpired() int {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	kept := bs.order[:0]
	var removed int
	for _, id := range bs.order {
		if bs.expired(bs.builds[id]) {
			delete(bs.builds, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	bs.order = kept
	return removed
}

// Len returns the number of retained builds, expired or not
func (bs *BuildsStore) Len() int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return len(bs.builds)
}

func (bs *BuildsStore) expired(build *Build) bool {
	return bs.ttl > 0 && bs.now().Sub(build.CreatedAt) > bs.ttl
}
