// Package eglvendor generates the EGL ICD descriptor files consumed by the
// libglvnd dispatch layer.
package eglvendor

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Descriptor pairs a descriptor file name with the DSO it points at. The
// numeric prefix drives libglvnd's lexical load order, lowest first.
type Descriptor struct {
	FileName    string
	LibraryName string
}

// Descriptors returns the fixed, ordered list of vendor descriptors.
func Descriptors() []Descriptor {
	return []Descriptor{
		{FileName: "10_nvidia.json", LibraryName: "libEGL_nvidia.so.0"},
		{FileName: "10_nvidia_wayland.json", LibraryName: "libnvidia-egl-wayland.so.1"},
		{FileName: "15_nvidia_gbm.json", LibraryName: "libnvidia-egl-gbm.so.1"},
	}
}

// icdDocument is the descriptor wire format.
type icdDocument struct {
	FileFormatVersion string `json:"file_format_version"`
	ICD               icdRef `json:"ICD"`
}

type icdRef struct {
	LibraryPath string `json:"library_path"`
}

// Writer emits the vendor descriptor files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteConfigs writes one descriptor per entry into dir. Each descriptor
// names its DSO by file name only, so the dynamic linker resolves it through
// the search path at load time instead of a baked-in staging path. Re-running
// with the same inputs produces byte-identical files.
func (w *Writer) WriteConfigs(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigFailed.Error()), "path", dir)
	}
	for _, desc := range Descriptors() {
		doc := icdDocument{
			FileFormatVersion: "1.0.0",
			ICD:               icdRef{LibraryPath: desc.LibraryName},
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigFailed.Error()), "file", desc.FileName)
		}
		path := filepath.Join(dir, desc.FileName)
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigFailed.Error()), "path", path)
		}
	}
	return nil
}
