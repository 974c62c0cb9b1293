package eglvendor_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/internal/adapters/eglvendor"
)

func TestWriter_WriteConfigs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "egl-confs")
	w := eglvendor.NewWriter()

	require.NoError(t, w.WriteConfigs(dir))

	for _, desc := range eglvendor.Descriptors() {
		data, err := os.ReadFile(filepath.Join(dir, desc.FileName))
		require.NoError(t, err)

		var doc struct {
			FileFormatVersion string `json:"file_format_version"`
			ICD               struct {
				LibraryPath string `json:"library_path"`
			} `json:"ICD"`
		}
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "1.0.0", doc.FileFormatVersion)
		// Name only: the dynamic linker resolves it through the search path.
		assert.Equal(t, desc.LibraryName, doc.ICD.LibraryPath)
		assert.False(t, filepath.IsAbs(doc.ICD.LibraryPath))
	}
}

func TestWriter_WriteConfigs_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "egl-confs")
	w := eglvendor.NewWriter()

	require.NoError(t, w.WriteConfigs(dir))
	first := readAll(t, dir)

	require.NoError(t, w.WriteConfigs(dir))
	second := readAll(t, dir)

	assert.Equal(t, first, second, "re-running must produce byte-identical files")
}

func TestDescriptors_WaylandBeforeGBM(t *testing.T) {
	descs := eglvendor.Descriptors()
	require.Len(t, descs, 3)
	// The numeric prefixes drive libglvnd's lexical load order.
	assert.Equal(t, "10_nvidia.json", descs[0].FileName)
	assert.Equal(t, "10_nvidia_wayland.json", descs[1].FileName)
	assert.Equal(t, "15_nvidia_gbm.json", descs[2].FileName)
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = data
	}
	return out
}
