package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/glhost/internal/adapters/classify"
	"go.trai.ch/glhost/internal/core/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := classify.NewClassifier()

	tests := []struct {
		name     string
		filename string
		want     domain.Category
	}{
		{name: "generic core", filename: "libnvidia-glcore.so.550.54.14", want: domain.CategoryGeneric},
		{name: "generic tls", filename: "libnvidia-tls.so.1", want: domain.CategoryGeneric},
		{name: "generic host dep", filename: "libgbm.so.1", want: domain.CategoryGeneric},
		{name: "cuda", filename: "libcuda.so.1", want: domain.CategoryCUDA},
		{name: "cuda debugger", filename: "libcudadebugger.so.550.54.14", want: domain.CategoryCUDA},
		{name: "glx", filename: "libGLX_nvidia.so.0", want: domain.CategoryGLX},
		{name: "egl", filename: "libEGL_nvidia.so.0", want: domain.CategoryEGL},
		{name: "egl wayland", filename: "libnvidia-egl-wayland.so.1", want: domain.CategoryEGL},
		{name: "egl gbm", filename: "libnvidia-egl-gbm.so.1", want: domain.CategoryEGL},
		{name: "unrelated libc", filename: "libc.so.6", want: 0},
		{name: "mesa gl", filename: "libGL.so.1", want: 0},
		{name: "text file", filename: "README.md", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.filename))
		})
	}
}

func TestClassifier_Classify_Unversioned(t *testing.T) {
	c := classify.NewClassifier()

	// Both the bare .so name and fully versioned names match.
	assert.Equal(t, domain.CategoryCUDA, c.Classify("libcuda.so"))
	assert.Equal(t, domain.CategoryGeneric, c.Classify("libnvidia-ml.so"))
}
