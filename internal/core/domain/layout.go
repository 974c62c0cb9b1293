package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the published cache directory under the
	// user cache root.
	CacheDirName = "glhost"

	// LockFileName is the cross-process lock file, a sibling of the cache
	// directory so it survives cache republishing.
	LockFileName = "glhost.lock"

	// ManifestFileName is the serialized manifest at the cache root.
	ManifestFileName = "manifest.json"

	// SearchPathFileName holds the precomputed LD_LIBRARY_PATH overlay.
	SearchPathFileName = "search_path"

	// EGLConfDirName holds the generated EGL vendor descriptors.
	EGLConfDirName = "egl-confs"

	// GenericBucketName is the role subdirectory for the base driver DSOs.
	// All other buckets resolve their runtime dependencies through this one.
	GenericBucketName = "lib"

	// CUDABucketName is the role subdirectory for CUDA DSOs.
	CUDABucketName = "cuda"

	// GLXBucketName is the role subdirectory for GLX DSOs.
	GLXBucketName = "glx"

	// EGLBucketName is the role subdirectory for EGL DSOs.
	EGLBucketName = "egl"

	// DirPerm is the default permission for cache directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for metadata files (rw-r--r--).
	FilePerm = 0o644
)

// BucketNames lists the role subdirectories in the order they appear on the
// composed search path. The generic bucket comes first so the patched
// runpaths and the overlay agree on where dependencies resolve.
func BucketNames() []string {
	return []string{GenericBucketName, GLXBucketName, CUDABucketName, EGLBucketName}
}

// DefaultCacheRoot returns the published cache directory, honoring
// XDG_CACHE_HOME and falling back to ~/.cache.
func DefaultCacheRoot() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, CacheDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort for environments without a resolvable home.
		return filepath.Join(os.TempDir(), CacheDirName)
	}
	return filepath.Join(home, ".cache", CacheDirName)
}

// LockPath returns the lock file path for a given cache root. The lock lives
// next to the cache root, not inside it, because publishing replaces the root
// wholesale.
func LockPath(cacheRoot string) string {
	return filepath.Join(filepath.Dir(cacheRoot), LockFileName)
}
