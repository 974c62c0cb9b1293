package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner lists candidate directories and builds the in-memory driver
// directory model. Classification is delegated to the classifier port;
// fingerprinting to the Hasher.
type Scanner struct {
	classifier ports.Classifier
	hasher     *Hasher
	logger     ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(classifier ports.Classifier, hasher *Hasher, logger ports.Logger) *Scanner {
	return &Scanner{
		classifier: classifier,
		hasher:     hasher,
		logger:     logger,
	}
}

// Scan classifies the immediate regular files of each directory (symlinks
// resolved, no recursion) and buckets the matches. Directories without a
// generic match are dropped entirely: absence of the base driver implies
// absence of all specializations. The result is sorted by path.
func (s *Scanner) Scan(dirs []string) ([]domain.DriverDirectory, error) {
	result := make([]domain.DriverDirectory, 0, len(dirs))
	for _, dir := range dirs {
		dd, err := s.scanDir(dir)
		if err != nil {
			return nil, err
		}
		if dd != nil {
			result = append(result, *dd)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

// candidate is one classified regular file awaiting fingerprinting.
type candidate struct {
	name     string
	fullPath string
	category domain.Category
}

func (s *Scanner) scanDir(dir string) (*domain.DriverDirectory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", dir)
	}

	var matches []candidate
	hasGeneric := false
	for _, entry := range entries {
		cat := s.classifier.Classify(entry.Name())
		if cat == 0 {
			continue
		}
		fullPath := filepath.Join(dir, entry.Name())
		// Stat follows symlinks; anything that does not resolve to a regular
		// file is ignored.
		info, err := os.Stat(fullPath)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if cat.Has(domain.CategoryGeneric) {
			hasGeneric = true
		}
		matches = append(matches, candidate{name: entry.Name(), fullPath: fullPath, category: cat})
	}

	if !hasGeneric {
		return nil, nil
	}

	identities, err := s.fingerprint(matches)
	if err != nil {
		return nil, err
	}

	dd := domain.DriverDirectory{Path: dir}
	for i, m := range matches {
		lib := domain.ResolvedLibrary{
			Name:      m.name,
			OriginDir: dir,
			FullPath:  m.fullPath,
			Identity:  identities[i],
		}
		if m.category.Has(domain.CategoryGeneric) {
			dd.Generic = append(dd.Generic, lib)
		}
		if m.category.Has(domain.CategoryCUDA) {
			dd.CUDA = append(dd.CUDA, lib)
		}
		if m.category.Has(domain.CategoryGLX) {
			dd.GLX = append(dd.GLX, lib)
		}
		if m.category.Has(domain.CategoryEGL) {
			dd.EGL = append(dd.EGL, lib)
		}
	}
	return &dd, nil
}

// fingerprint computes identities for all matches. Content hashing reads
// every file, so it fans out across CPUs; mtime-size mode is cheap enough
// that the extra goroutines are harmless.
func (s *Scanner) fingerprint(matches []candidate) ([]domain.Identity, error) {
	identities := make([]domain.Identity, len(matches))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, m := range matches {
		g.Go(func() error {
			id, err := s.hasher.Identity(m.fullPath)
			if err != nil {
				return err
			}
			identities[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return identities, nil
}
