// Package patchelf invokes the external patchelf tool to rewrite the runpath
// of copied driver libraries.
package patchelf

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Patcher = (*Patcher)(nil)

// Patcher shells out to patchelf. The tool path is explicit configuration so
// a packaged build can pin its own binary instead of relying on PATH.
type Patcher struct {
	toolPath string
	logger   ports.Logger
}

// NewPatcher creates a Patcher using the given patchelf binary.
func NewPatcher(toolPath string, logger ports.Logger) *Patcher {
	return &Patcher{
		toolPath: toolPath,
		logger:   logger,
	}
}

// Patch sets the runpath of every file in one patchelf invocation. The batch
// either fully succeeds or the whole rebuild is aborted by the caller.
func (p *Patcher) Patch(ctx context.Context, files []string, runpath string) error {
	if len(files) == 0 {
		return nil
	}

	p.logger.Debug("patching runpath to " + runpath + " for " + strings.Join(files, " "))

	args := append([]string{"--set-rpath", runpath}, files...)
	//nolint:gosec // Tool path comes from configuration, files from our own staging dir
	cmd := exec.CommandContext(ctx, p.toolPath, args...)

	if _, err := cmd.Output(); err != nil {
		patchErr := zerr.Wrap(err, domain.ErrPatchFailed.Error())
		patchErr = zerr.With(patchErr, "tool", p.toolPath)
		patchErr = zerr.With(patchErr, "runpath", runpath)
		patchErr = zerr.With(patchErr, "files", strings.Join(files, ":"))
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			patchErr = zerr.With(patchErr, "stderr", stderr)
		}
		return patchErr
	}
	return nil
}
