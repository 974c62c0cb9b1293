package ports

import "go.trai.ch/glhost/internal/core/domain"

// ManifestStore persists and validates the cache manifest and the
// precomputed search path overlay.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load reads and decodes the manifest from the given directory.
	// A missing, unreadable or unparseable manifest yields an error wrapping
	// domain.ErrManifestParse; callers treat that as a cache miss.
	Load(dir string) (*domain.Manifest, error)

	// Save encodes and writes the manifest into the given directory.
	Save(dir string, m *domain.Manifest) error

	// UpToDate reports whether the stored manifest under cacheRoot equals the
	// fresh scan. Absent or corrupt state is simply not up to date.
	UpToDate(fresh *domain.Manifest, cacheRoot string) bool

	// LoadSearchPath reads the precomputed overlay string from the given
	// directory.
	LoadSearchPath(dir string) (string, error)

	// SaveSearchPath writes the overlay string into the given directory.
	SaveSearchPath(dir, overlay string) error
}
