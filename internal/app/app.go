// Package app implements the application layer for glhost.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/glhost/internal/adapters/config"
	"go.trai.ch/glhost/internal/adapters/launcher"
	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/glhost/internal/engine/builder"
	"go.trai.ch/zerr"
)

// Environment variables consumed by GPU userland at process start.
const (
	EnvLDLibraryPath = "LD_LIBRARY_PATH"
	EnvGLXVendorName = "__GLX_VENDOR_LIBRARY_NAME"
	EnvEGLVendorDirs = "__EGL_VENDOR_LIBRARY_DIRS"
	glxVendorNVIDIA  = "nvidia"
)

// App represents the main application logic.
type App struct {
	config     *config.Config
	candidates ports.CandidateResolver
	scanner    ports.Scanner
	store      ports.ManifestStore
	locker     ports.Locker
	builder    *builder.Builder
	launcher   *launcher.Launcher
	telemetry  ports.Telemetry
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	candidates ports.CandidateResolver,
	scanner ports.Scanner,
	store ports.ManifestStore,
	locker ports.Locker,
	bld *builder.Builder,
	launch *launcher.Launcher,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		config:     cfg,
		candidates: candidates,
		scanner:    scanner,
		store:      store,
		locker:     locker,
		builder:    bld,
		launcher:   launch,
		telemetry:  telemetry,
		logger:     log,
	}
}

// Options configuration shared by the cache-driving commands.
type Options struct {
	// DriverDir, when set, bypasses loader-config discovery and scans only
	// this directory.
	DriverDir string
}

// PrepareEnv brings the cache up to date for the current host driver state
// and returns the environment overlay the wrapped program needs. The whole
// scan-validate-rebuild sequence runs under the cache lock, so concurrent
// invocations serialize and each observes a complete generation.
func (a *App) PrepareEnv(ctx context.Context, opts Options) (map[string]string, error) {
	cacheRoot := a.config.CacheDir

	dirs, err := a.candidateDirs(opts)
	if err != nil {
		return nil, err
	}

	lockPath := domain.LockPath(cacheRoot)
	if err := os.MkdirAll(filepath.Dir(lockPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", lockPath)
	}
	lease, err := a.locker.Acquire(lockPath)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	scanned, err := a.scanner.Scan(dirs)
	if err != nil {
		return nil, err
	}
	manifest := domain.NewManifest(a.config.Mode(), scanned)

	overlay, err := a.resolveOverlay(ctx, manifest, cacheRoot)
	if err != nil {
		return nil, err
	}

	return composeEnv(overlay, filepath.Join(cacheRoot, domain.EGLConfDirName), os.Getenv(EnvLDLibraryPath)), nil
}

// resolveOverlay returns the cached overlay on a hit and rebuilds otherwise.
// A manifest that matches but lacks a readable search path file counts as a
// miss; rebuilding restores both.
func (a *App) resolveOverlay(ctx context.Context, manifest *domain.Manifest, cacheRoot string) (string, error) {
	if a.store.UpToDate(manifest, cacheRoot) {
		overlay, err := a.store.LoadSearchPath(cacheRoot)
		if err == nil {
			_, vertex := a.telemetry.Record(ctx, "cache "+cacheRoot)
			vertex.Cached()
			a.logger.Debug("cache hit, reusing generation at " + cacheRoot)
			return overlay, nil
		}
		a.logger.Debug("manifest matches but search path is unreadable, rebuilding")
	}
	return a.builder.Rebuild(ctx, manifest, cacheRoot)
}

// Run prepares the environment and replaces the current process with the
// given binary. It only returns on failure.
func (a *App) Run(ctx context.Context, binary string, args []string, opts Options) error {
	if binary == "" {
		return domain.ErrNoBinary
	}
	env, err := a.PrepareEnv(ctx, opts)
	if err != nil {
		return err
	}
	if err := a.telemetry.Close(); err != nil {
		a.logger.Debug("telemetry close failed: " + err.Error())
	}
	return a.launcher.Exec(binary, args, env)
}

// PrintEnv prepares the environment and writes it to w as KEY=VALUE lines in
// deterministic order, for use with tools like env(1) or shell eval.
func (a *App) PrintEnv(ctx context.Context, w io.Writer, opts Options) error {
	env, err := a.PrepareEnv(ctx, opts)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, env[key]); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes the published cache generation. The next run rebuilds from
// scratch. The lock file survives so concurrent invocations keep excluding
// each other.
func (a *App) Clean(_ context.Context) error {
	cacheRoot := a.config.CacheDir

	lockPath := domain.LockPath(cacheRoot)
	if err := os.MkdirAll(filepath.Dir(lockPath), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", lockPath)
	}
	lease, err := a.locker.Acquire(lockPath)
	if err != nil {
		return err
	}
	defer lease.Release()

	if err := os.RemoveAll(cacheRoot); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", cacheRoot)
	}
	a.logger.Info("removed cache at " + cacheRoot)
	return nil
}

// candidateDirs resolves the directories to scan: an explicit per-invocation
// directory wins, then configured directories, then loader discovery.
func (a *App) candidateDirs(opts Options) ([]string, error) {
	if opts.DriverDir != "" {
		return []string{opts.DriverDir}, nil
	}
	if len(a.config.DriverDirs) > 0 {
		return a.config.DriverDirs, nil
	}
	return a.candidates.Candidates()
}

// composeEnv builds the process environment overlay: vendor selection for
// GLX, the EGL descriptor directory, and the cache search path prepended to
// any inherited LD_LIBRARY_PATH.
func composeEnv(overlay, eglConfDir, inherited string) map[string]string {
	env := map[string]string{
		EnvGLXVendorName: glxVendorNVIDIA,
		EnvEGLVendorDirs: eglConfDir,
	}
	switch {
	case overlay == "":
		env[EnvLDLibraryPath] = inherited
	case inherited == "":
		env[EnvLDLibraryPath] = overlay
	default:
		env[EnvLDLibraryPath] = overlay + ":" + inherited
	}
	return env
}
