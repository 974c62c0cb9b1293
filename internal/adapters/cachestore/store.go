// Package cachestore persists the cache manifest and the precomputed search
// path overlay, and validates a fresh scan against the stored state.
package cachestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore on top of plain files inside a cache
// generation directory.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Serialize encodes a manifest in canonical form: directories sorted by path,
// every role bucket sorted by library. Two manifests that are equal under
// order-insensitive equality serialize to identical bytes.
func Serialize(m *domain.Manifest) ([]byte, error) {
	normalized := normalize(m)
	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWrite.Error())
	}
	return data, nil
}

// Deserialize decodes a manifest, rejecting malformed documents and unknown
// schema versions. Both failures wrap domain.ErrManifestParse so callers can
// treat them uniformly as a cache miss.
func Deserialize(data []byte) (*domain.Manifest, error) {
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParse.Error())
	}
	if m.Version != domain.ManifestSchemaVersion {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrManifestVersion, domain.ErrManifestParse.Error()),
			"version", m.Version,
		)
	}
	if !m.IdentityMode.Valid() {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidIdentityMode, domain.ErrManifestParse.Error()),
			"identity_mode", string(m.IdentityMode),
		)
	}
	return &m, nil
}

// Load reads and decodes the manifest from dir. A missing file is reported
// the same way as a corrupt one.
func (s *Store) Load(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is inside our own cache
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParse.Error()), "path", path)
	}
	return Deserialize(data)
}

// Save writes the manifest into dir in canonical form.
func (s *Store) Save(dir string, m *domain.Manifest) error {
	data, err := Serialize(m)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, domain.ManifestFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWrite.Error()), "path", path)
	}
	return nil
}

// UpToDate reports whether the stored manifest under cacheRoot equals the
// fresh scan. Any load failure counts as stale, never as an error.
func (s *Store) UpToDate(fresh *domain.Manifest, cacheRoot string) bool {
	stored, err := s.Load(cacheRoot)
	if err != nil {
		s.logger.Debug("stored manifest unusable, treating as cache miss: " + err.Error())
		return false
	}
	return fresh.Equal(stored)
}

// LoadSearchPath reads the precomputed overlay string from dir.
func (s *Store) LoadSearchPath(dir string) (string, error) {
	path := filepath.Join(dir, domain.SearchPathFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is inside our own cache
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSearchPathRead.Error()), "path", path)
	}
	return string(data), nil
}

// SaveSearchPath writes the overlay string into dir.
func (s *Store) SaveSearchPath(dir, overlay string) error {
	path := filepath.Join(dir, domain.SearchPathFileName)
	if err := os.WriteFile(path, []byte(overlay), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSearchPathWrite.Error()), "path", path)
	}
	return nil
}

// normalize returns a sorted deep copy of the manifest.
func normalize(m *domain.Manifest) *domain.Manifest {
	out := &domain.Manifest{
		Version:      m.Version,
		IdentityMode: m.IdentityMode,
		Directories:  make([]domain.DriverDirectory, len(m.Directories)),
	}
	for i, dir := range m.Directories {
		out.Directories[i] = domain.DriverDirectory{
			Path:    dir.Path,
			Generic: sortedLibs(dir.Generic),
			CUDA:    sortedLibs(dir.CUDA),
			GLX:     sortedLibs(dir.GLX),
			EGL:     sortedLibs(dir.EGL),
		}
	}
	sort.Slice(out.Directories, func(i, j int) bool {
		return out.Directories[i].Path < out.Directories[j].Path
	})
	return out
}

func sortedLibs(libs []domain.ResolvedLibrary) []domain.ResolvedLibrary {
	out := make([]domain.ResolvedLibrary, len(libs))
	copy(out, libs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].FullPath < out[j].FullPath
	})
	return out
}
