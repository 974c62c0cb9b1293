package ports

import "context"

// Patcher rewrites the embedded library search directive of shared objects.
// Implementations treat one call as an all-or-nothing batch.
//
//go:generate mockgen -source=patcher.go -destination=mocks/mock_patcher.go -package=mocks
type Patcher interface {
	// Patch sets the runpath of every file in the batch to runpath.
	Patch(ctx context.Context, files []string, runpath string) error
}
