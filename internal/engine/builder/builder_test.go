package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/internal/adapters/cachestore"
	"go.trai.ch/glhost/internal/adapters/eglvendor"
	"go.trai.ch/glhost/internal/adapters/telemetry"
	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports/mocks"
	"go.trai.ch/glhost/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	builder   *builder.Builder
	patcher   *mocks.MockPatcher
	store     *cachestore.Store
	cacheRoot string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	patcher := mocks.NewMockPatcher(ctrl)
	store := cachestore.NewStore(mockLogger)

	return &fixture{
		builder:   builder.NewBuilder(store, patcher, eglvendor.NewWriter(), telemetry.NewNoOp(), mockLogger),
		patcher:   patcher,
		store:     store,
		cacheRoot: filepath.Join(t.TempDir(), "cache", "glhost"),
	}
}

// sourceDir writes host library files and returns the matching scan model.
func sourceDir(t *testing.T) (string, domain.DriverDirectory) {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) domain.ResolvedLibrary {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o444))
		return domain.ResolvedLibrary{
			Name:      name,
			OriginDir: dir,
			FullPath:  path,
			Identity:  domain.Identity{SHA256: "sum-" + name},
		}
	}

	dd := domain.DriverDirectory{
		Path: dir,
		Generic: []domain.ResolvedLibrary{
			write("libnvidia-glcore.so.1", "glcore bits"),
			write("libnvidia-tls.so.1", "tls bits"),
		},
		CUDA: []domain.ResolvedLibrary{
			write("libcuda.so.1", "cuda bits"),
		},
	}
	return dir, dd
}

func TestPathDigest_Stable(t *testing.T) {
	d1 := builder.PathDigest("/usr/lib")
	d2 := builder.PathDigest("/usr/lib")
	d3 := builder.PathDigest("/usr/lib64")

	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)
	assert.Len(t, d1, 16)
}

func TestBuilder_Rebuild_PublishesGeneration(t *testing.T) {
	f := newFixture(t)
	srcDir, dd := sourceDir(t)
	m := domain.NewManifest(domain.IdentityModeContent, []domain.DriverDirectory{dd})

	digest := builder.PathDigest(srcDir)
	libRunpath := filepath.Join(f.cacheRoot, digest, domain.GenericBucketName)

	// Both buckets are patched against the published generic bucket, and the
	// staged files must already exist when patchelf runs.
	f.patcher.EXPECT().
		Patch(gomock.Any(), gomock.Len(2), libRunpath).
		DoAndReturn(func(_ context.Context, files []string, _ string) error {
			for _, file := range files {
				_, err := os.Stat(file)
				assert.NoError(t, err, "staged file must exist at patch time")
			}
			return nil
		})
	f.patcher.EXPECT().Patch(gomock.Any(), gomock.Len(1), libRunpath).Return(nil)

	overlay, err := f.builder.Rebuild(context.Background(), m, f.cacheRoot)
	require.NoError(t, err)

	wantOverlay := strings.Join([]string{
		filepath.Join(f.cacheRoot, digest, domain.GenericBucketName),
		filepath.Join(f.cacheRoot, digest, domain.CUDABucketName),
	}, ":")
	assert.Equal(t, wantOverlay, overlay)

	// Copies landed under the published root with the source content.
	data, err := os.ReadFile(filepath.Join(f.cacheRoot, digest, domain.GenericBucketName, "libnvidia-glcore.so.1"))
	require.NoError(t, err)
	assert.Equal(t, "glcore bits", string(data))

	// Copies stay writable for in-place patching even when the source is not.
	info, err := os.Stat(filepath.Join(f.cacheRoot, digest, domain.CUDABucketName, "libcuda.so.1"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o200)

	// Empty buckets produce no directories.
	_, err = os.Stat(filepath.Join(f.cacheRoot, digest, domain.GLXBucketName))
	assert.True(t, os.IsNotExist(err))

	// Manifest and search path are part of the generation.
	stored, err := f.store.Load(f.cacheRoot)
	require.NoError(t, err)
	assert.True(t, m.Equal(stored))

	persisted, err := f.store.LoadSearchPath(f.cacheRoot)
	require.NoError(t, err)
	assert.Equal(t, overlay, persisted)

	// EGL descriptors are regenerated on every rebuild.
	for _, desc := range eglvendor.Descriptors() {
		_, err := os.Stat(filepath.Join(f.cacheRoot, domain.EGLConfDirName, desc.FileName))
		assert.NoError(t, err)
	}
}

func TestBuilder_Rebuild_ReplacesPreviousGeneration(t *testing.T) {
	f := newFixture(t)
	srcDir, dd := sourceDir(t)
	m := domain.NewManifest(domain.IdentityModeContent, []domain.DriverDirectory{dd})

	// Simulate a stale generation with leftovers a fresh build must not keep.
	require.NoError(t, os.MkdirAll(filepath.Join(f.cacheRoot, "deadbeef"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(f.cacheRoot, "deadbeef", "stale.so"), []byte("old"), 0o644))

	f.patcher.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := f.builder.Rebuild(context.Background(), m, f.cacheRoot)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(f.cacheRoot, "deadbeef"))
	assert.True(t, os.IsNotExist(err), "previous generation must be replaced wholesale")

	_, err = os.Stat(filepath.Join(f.cacheRoot, builder.PathDigest(srcDir)))
	assert.NoError(t, err)
}

func TestBuilder_Rebuild_PatchFailureKeepsOldGeneration(t *testing.T) {
	f := newFixture(t)
	_, dd := sourceDir(t)
	m := domain.NewManifest(domain.IdentityModeContent, []domain.DriverDirectory{dd})

	// Publish a valid previous generation first.
	f.patcher.EXPECT().Patch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	oldOverlay, err := f.builder.Rebuild(context.Background(), m, f.cacheRoot)
	require.NoError(t, err)

	// Now fail the next rebuild at the patch step.
	f.patcher.EXPECT().
		Patch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrPatchFailed)

	_, err = f.builder.Rebuild(context.Background(), m, f.cacheRoot)
	require.Error(t, err)

	// The previous generation is still complete and authoritative.
	stored, err := f.store.Load(f.cacheRoot)
	require.NoError(t, err)
	assert.True(t, m.Equal(stored))

	persisted, err := f.store.LoadSearchPath(f.cacheRoot)
	require.NoError(t, err)
	assert.Equal(t, oldOverlay, persisted)

	// No staging leftovers next to the cache root.
	entries, err := os.ReadDir(filepath.Dir(f.cacheRoot))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".glhost-staging-"), "staging dir %s must be cleaned up", e.Name())
	}
}

func TestSearchPathOverlay_BucketOrder(t *testing.T) {
	dd := domain.DriverDirectory{
		Path:    "/usr/lib",
		Generic: []domain.ResolvedLibrary{{Name: "libnvidia-glcore.so.1"}},
		CUDA:    []domain.ResolvedLibrary{{Name: "libcuda.so.1"}},
		GLX:     []domain.ResolvedLibrary{{Name: "libGLX_nvidia.so.0"}},
		EGL:     []domain.ResolvedLibrary{{Name: "libEGL_nvidia.so.0"}},
	}
	m := domain.NewManifest(domain.IdentityModeContent, []domain.DriverDirectory{dd})

	overlay := builder.SearchPathOverlay("/cache", m)
	digest := builder.PathDigest("/usr/lib")
	assert.Equal(t, strings.Join([]string{
		filepath.Join("/cache", digest, domain.GenericBucketName),
		filepath.Join("/cache", digest, domain.GLXBucketName),
		filepath.Join("/cache", digest, domain.CUDABucketName),
		filepath.Join("/cache", digest, domain.EGLBucketName),
	}, ":"), overlay)
}

func TestSearchPathOverlay_EmptyManifest(t *testing.T) {
	m := domain.NewManifest(domain.IdentityModeContent, nil)
	assert.Empty(t, builder.SearchPathOverlay("/cache", m))
}
