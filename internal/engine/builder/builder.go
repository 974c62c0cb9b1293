// Package builder stages and publishes cache generations.
package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/glhost/internal/adapters/eglvendor"
	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder rebuilds the on-disk cache from a fresh scan. A rebuild stages a
// complete new generation in a temporary directory on the same filesystem as
// the cache root, then publishes it with a single rename. Callers must hold
// the cache lock for the whole rebuild.
type Builder struct {
	store     ports.ManifestStore
	patcher   ports.Patcher
	vendor    *eglvendor.Writer
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(
	store ports.ManifestStore,
	patcher ports.Patcher,
	vendor *eglvendor.Writer,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Builder {
	return &Builder{
		store:     store,
		patcher:   patcher,
		vendor:    vendor,
		telemetry: telemetry,
		logger:    logger,
	}
}

// PathDigest returns the stable cache subdirectory name for a host directory.
// Hashing the path (not the content) keeps the final search path short and
// deterministic, and keeps distinct host directories from colliding.
func PathDigest(path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))
}

// Rebuild stages, populates and atomically publishes a new generation at
// cacheRoot, returning the search path overlay. Any copy or patch failure
// aborts before publish and leaves the previous generation authoritative.
func (b *Builder) Rebuild(ctx context.Context, m *domain.Manifest, cacheRoot string) (string, error) {
	parent := filepath.Dir(cacheRoot)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", parent)
	}

	// Staging lives next to the cache root so the publish below is a rename,
	// not a copy.
	staging, err := os.MkdirTemp(parent, ".glhost-staging-")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", parent)
	}
	published := false
	defer func() {
		if !published {
			_ = os.RemoveAll(staging)
		}
	}()

	for _, dir := range m.Directories {
		vctx, vertex := b.telemetry.Record(ctx, "cache "+dir.Path)
		err := b.stageDirectory(vctx, dir, staging, cacheRoot)
		vertex.Complete(err)
		if err != nil {
			return "", err
		}
	}

	if err := b.vendor.WriteConfigs(filepath.Join(staging, domain.EGLConfDirName)); err != nil {
		return "", err
	}

	if err := b.store.Save(staging, m); err != nil {
		return "", err
	}

	// The overlay is computed from published paths, not staging paths, and
	// persisted so cache hits never recompute it.
	overlay := SearchPathOverlay(cacheRoot, m)
	if err := b.store.SaveSearchPath(staging, overlay); err != nil {
		return "", err
	}

	// Publish. Between the removal and the rename the cache root is absent,
	// but the lock keeps other processes from observing that window; a crash
	// here is detected as "no manifest" on the next run.
	if err := os.RemoveAll(cacheRoot); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", cacheRoot)
	}
	if err := os.Rename(staging, cacheRoot); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", cacheRoot)
	}
	published = true

	b.logger.Debug("published new cache generation at " + cacheRoot)
	return overlay, nil
}

// bucket pairs a role subdirectory name with its libraries.
type bucket struct {
	name string
	libs []domain.ResolvedLibrary
}

func buckets(dir domain.DriverDirectory) []bucket {
	return []bucket{
		{name: domain.GenericBucketName, libs: dir.Generic},
		{name: domain.GLXBucketName, libs: dir.GLX},
		{name: domain.CUDABucketName, libs: dir.CUDA},
		{name: domain.EGLBucketName, libs: dir.EGL},
	}
}

// stageDirectory copies and patches one driver directory into the staging
// root. Every bucket is patched against the published generic bucket path, so
// all categories resolve their dependencies through the single lib directory
// and never through a host path.
func (b *Builder) stageDirectory(ctx context.Context, dir domain.DriverDirectory, staging, cacheRoot string) error {
	digest := PathDigest(dir.Path)
	runpath := filepath.Join(cacheRoot, digest, domain.GenericBucketName)

	for _, bkt := range buckets(dir) {
		if len(bkt.libs) == 0 {
			continue
		}
		dest := filepath.Join(staging, digest, bkt.name)
		if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheCopyFailed.Error()), "path", dest)
		}

		copied := make([]string, 0, len(bkt.libs))
		for _, lib := range bkt.libs {
			target := filepath.Join(dest, lib.Name)
			if err := copyLibrary(lib.FullPath, target); err != nil {
				copyErr := zerr.Wrap(err, domain.ErrCacheCopyFailed.Error())
				copyErr = zerr.With(copyErr, "library", lib.FullPath)
				return zerr.With(copyErr, "category", bkt.name)
			}
			copied = append(copied, target)
		}

		if err := b.patcher.Patch(ctx, copied, runpath); err != nil {
			return zerr.With(err, "category", bkt.name)
		}
	}
	return nil
}

// copyLibrary copies src to dst, preserving the source permissions plus
// owner write access, which the in-place patch step requires.
func copyLibrary(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the scan
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0o200) //nolint:gosec // Staging path
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// OpenFile permissions are subject to umask; enforce the final mode.
	return os.Chmod(dst, info.Mode().Perm()|0o200)
}

// SearchPathOverlay computes the colon-joined, published bucket paths for
// every scanned directory, generic bucket first.
func SearchPathOverlay(cacheRoot string, m *domain.Manifest) string {
	var parts []string
	for _, dir := range m.Directories {
		digest := PathDigest(dir.Path)
		for _, bkt := range buckets(dir) {
			if len(bkt.libs) == 0 {
				continue
			}
			parts = append(parts, filepath.Join(cacheRoot, digest, bkt.name))
		}
	}
	return strings.Join(parts, ":")
}
