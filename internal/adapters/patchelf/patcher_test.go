package patchelf_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/internal/adapters/patchelf"
	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newPatcher(t *testing.T, toolPath string) *patchelf.Patcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return patchelf.NewPatcher(toolPath, mockLogger)
}

// fakeTool writes a shell script standing in for patchelf. It records its
// arguments to argsFile and exits with the given code.
func fakeTool(t *testing.T, argsFile string, exitCode int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "patchelf")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\n"
	if exitCode != 0 {
		script += "echo 'cannot patch' >&2\n"
	}
	script += "exit " + map[int]string{0: "0", 1: "1"}[exitCode] + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestPatcher_BatchInvocation(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	p := newPatcher(t, fakeTool(t, argsFile, 0))

	files := []string{"/stage/a/lib/liba.so", "/stage/a/lib/libb.so"}
	require.NoError(t, p.Patch(context.Background(), files, "/cache/a/lib"))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{"--set-rpath", "/cache/a/lib", files[0], files[1]}, got)
}

func TestPatcher_EmptyBatchIsNoOp(t *testing.T) {
	// Tool path does not even need to exist.
	p := newPatcher(t, "/nonexistent/patchelf")
	require.NoError(t, p.Patch(context.Background(), nil, "/cache/a/lib"))
}

func TestPatcher_ToolFailure(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	p := newPatcher(t, fakeTool(t, argsFile, 1))

	err := p.Patch(context.Background(), []string{"/stage/a/lib/liba.so"}, "/cache/a/lib")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPatchFailed.Error())
}

func TestPatcher_MissingTool(t *testing.T) {
	p := newPatcher(t, "/nonexistent/patchelf")

	err := p.Patch(context.Background(), []string{"/stage/a/lib/liba.so"}, "/cache/a/lib")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPatchFailed.Error())
}
