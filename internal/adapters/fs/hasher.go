// Package fs provides the filesystem adapters that scan host driver
// directories and fingerprint the libraries found there.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes library fingerprints under a fixed identity mode. The mode
// is chosen once per manifest schema; identities from different modes never
// compare equal.
type Hasher struct {
	mode domain.IdentityMode
}

// NewHasher creates a Hasher for the given identity mode.
func NewHasher(mode domain.IdentityMode) (*Hasher, error) {
	if !mode.Valid() {
		return nil, zerr.With(domain.ErrInvalidIdentityMode, "mode", string(mode))
	}
	return &Hasher{mode: mode}, nil
}

// Mode returns the active identity mode.
func (h *Hasher) Mode() domain.IdentityMode {
	return h.mode
}

// Identity fingerprints the file at path. Under content mode this reads the
// whole file; under mtime-size mode it costs one stat.
func (h *Hasher) Identity(path string) (domain.Identity, error) {
	if h.mode == domain.IdentityModeContent {
		sum, err := h.contentHash(path)
		if err != nil {
			return domain.Identity{}, err
		}
		return domain.Identity{SHA256: sum}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.Identity{}, zerr.With(zerr.Wrap(err, domain.ErrIdentityFailed.Error()), "path", path)
	}
	return domain.Identity{
		LastModified: info.ModTime().UnixNano(),
		Size:         info.Size(),
	}, nil
}

// contentHash computes the SHA256 of the file content.
func (h *Hasher) contentHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the directory scan
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrIdentityFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrIdentityFailed.Error()), "path", path)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
