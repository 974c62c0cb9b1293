// Package ldpath resolves the host directories the dynamic linker would
// search, from LD_LIBRARY_PATH and the ld.so.conf include tree.
package ldpath

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/glhost/internal/core/ports"
)

var _ ports.CandidateResolver = (*Resolver)(nil)

// defaultDirs are always appended after the configured paths, matching the
// loader's built-in search order plus the NixOS and WSL driver mounts.
var defaultDirs = []string{
	"/lib",
	"/usr/lib",
	"/lib64",
	"/usr/lib64",
	"/run/opengl-driver/lib",
	"/usr/lib/wsl/lib",
}

// Resolver discovers candidate driver directories on the host.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Candidates returns the existing directories in loader search order:
// LD_LIBRARY_PATH entries first, then /etc/ld.so.conf and its includes, then
// the PREFIX tree (Termux and friends), then the built-in defaults.
// Non-existent entries are filtered out; duplicates are kept in first-seen
// position.
func (r *Resolver) Candidates() ([]string, error) {
	var paths []string

	if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
		paths = append(paths, filepath.SplitList(ldPath)...)
	}

	if confPaths, err := parseLdConfFile("/etc/ld.so.conf"); err == nil {
		paths = append(paths, confPaths...)
	} else {
		r.logger.Debug("could not read /etc/ld.so.conf: " + err.Error())
	}

	if prefix := os.Getenv("PREFIX"); prefix != "" {
		if confPaths, err := parseLdConfFile(filepath.Join(prefix, "etc", "ld.so.conf")); err == nil {
			paths = append(paths, confPaths...)
		}
		paths = append(paths,
			filepath.Join(prefix, "lib"),
			filepath.Join(prefix, "usr", "lib"),
			filepath.Join(prefix, "lib64"),
			filepath.Join(prefix, "usr", "lib64"),
		)
	}

	paths = append(paths, defaultDirs...)

	return existingDirs(paths), nil
}

// parseLdConfFile reads an ld.so.conf-style file, recursively expanding
// "include" globs relative to the including file.
func parseLdConfFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // loader config path
	if err != nil {
		return nil, err
	}

	var paths []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if pattern, ok := strings.CutPrefix(line, "include "); ok {
			pattern = strings.TrimSpace(pattern)
			if !filepath.IsAbs(pattern) {
				pattern = filepath.Join(filepath.Dir(path), pattern)
			}
			matches, _ := filepath.Glob(pattern)
			for _, sub := range matches {
				subPaths, err := parseLdConfFile(sub)
				if err != nil {
					continue
				}
				paths = append(paths, subPaths...)
			}
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// existingDirs filters the list down to directories that exist, dropping
// duplicates while preserving order.
func existingDirs(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
