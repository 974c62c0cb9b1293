// Package launcher replaces the current process image with the wrapped
// binary. The cache core never calls this; only the CLI layer does, after the
// environment overlay has been composed.
package launcher

import (
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Launcher performs the final execve handoff.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Exec replaces the current process with binary, passing args and the current
// environment overridden by overlay. It only returns on failure.
func (l *Launcher) Exec(binary string, args []string, overlay map[string]string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "binary", binary)
	}

	env := mergeEnviron(os.Environ(), overlay)
	argv := append([]string{binary}, args...)

	l.logger.Debug("exec-ing " + path)
	if err := unix.Exec(path, argv, env); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "binary", path)
	}
	return nil
}

// mergeEnviron applies overlay entries on top of the inherited environment.
func mergeEnviron(environ []string, overlay map[string]string) []string {
	merged := make([]string, 0, len(environ)+len(overlay))
	for _, entry := range environ {
		key, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overlay[key]; overridden {
			continue
		}
		merged = append(merged, entry)
	}
	for key, value := range overlay {
		merged = append(merged, key+"="+value)
	}
	return merged
}
