// Package classify implements the driver shared object classifier.
package classify

import (
	"regexp"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
)

var _ ports.Classifier = (*Classifier)(nil)

// The pattern lists below were figured out by looking at the lib/ output of a
// linuxPackages.nvidia_x11 build. The generic list also carries the host-side
// dependencies (libdrm, libffi, libgbm, libexpat, libxcb, libX11, libwayland)
// the NVIDIA DSOs dlopen at runtime.
var genericPatterns = []string{
	`libGLESv1_CM_nvidia\.so.*$`,
	`libGLESv2_nvidia\.so.*$`,
	`libglxserver_nvidia\.so.*$`,
	`libnvcuvid\.so.*$`,
	`libnvidia-allocator\.so.*$`,
	`libnvidia-cfg\.so.*$`,
	`libnvidia-compiler\.so.*$`,
	`libnvidia-eglcore\.so.*$`,
	`libnvidia-encode\.so.*$`,
	`libnvidia-fbc\.so.*$`,
	`libnvidia-glcore\.so.*$`,
	`libnvidia-glsi\.so.*$`,
	`libnvidia-glvkspirv\.so.*$`,
	`libnvidia-gpucomp\.so.*$`,
	`libnvidia-ml\.so.*$`,
	`libnvidia-ngx\.so.*$`,
	`libnvidia-nvvm\.so.*$`,
	`libnvidia-opencl\.so.*$`,
	`libnvidia-opticalflow\.so.*$`,
	`libnvidia-ptxjitcompiler\.so.*$`,
	`libnvidia-rtcore\.so.*$`,
	`libnvidia-tls\.so.*$`,
	`libnvidia-vulkan-producer\.so.*$`,
	`libnvidia-wayland-client\.so.*$`,
	`libnvoptix\.so.*$`,
	`libnvtegrahv\.so.*$`,
	`libdrm\.so.*$`,
	`libffi\.so.*$`,
	`libgbm\.so.*$`,
	`libexpat\.so.*$`,
	`libxcb-glx\.so.*$`,
	`libX11-xcb\.so.*$`,
	`libX11\.so.*$`,
	`libXext\.so.*$`,
	`libwayland-server\.so.*$`,
	`libwayland-client\.so.*$`,
}

var cudaPatterns = []string{
	`libcudadebugger\.so.*$`,
	`libcuda\.so.*$`,
}

var glxPatterns = []string{
	`libGLX_nvidia\.so.*$`,
}

var eglPatterns = []string{
	`libEGL_nvidia\.so.*$`,
	`libnvidia-egl-wayland\.so.*$`,
	`libnvidia-egl-gbm\.so.*$`,
}

// Classifier matches shared object filenames against the NVIDIA driver
// pattern lists. It is safe for concurrent use.
type Classifier struct {
	generic []*regexp.Regexp
	cuda    []*regexp.Regexp
	glx     []*regexp.Regexp
	egl     []*regexp.Regexp
}

// NewClassifier compiles the pattern lists.
func NewClassifier() *Classifier {
	return &Classifier{
		generic: compile(genericPatterns),
		cuda:    compile(cudaPatterns),
		glx:     compile(glxPatterns),
		egl:     compile(eglPatterns),
	}
}

func compile(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// Classify returns the categories whose pattern lists match filename.
func (c *Classifier) Classify(filename string) domain.Category {
	var cat domain.Category
	if matchAny(c.generic, filename) {
		cat |= domain.CategoryGeneric
	}
	if matchAny(c.cuda, filename) {
		cat |= domain.CategoryCUDA
	}
	if matchAny(c.glx, filename) {
		cat |= domain.CategoryGLX
	}
	if matchAny(c.egl, filename) {
		cat |= domain.CategoryEGL
	}
	return cat
}

func matchAny(res []*regexp.Regexp, filename string) bool {
	for _, re := range res {
		if re.MatchString(filename) {
			return true
		}
	}
	return false
}
