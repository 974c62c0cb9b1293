package ports

import "go.trai.ch/glhost/internal/core/domain"

// Scanner turns candidate host directories into classified driver
// directories.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan lists each directory, classifies its regular files and buckets the
	// matches. Directories without a generic match are dropped. The result is
	// sorted by path for determinism; consumers compare it order-insensitively.
	Scan(dirs []string) ([]domain.DriverDirectory, error)
}
