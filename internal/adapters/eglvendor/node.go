package eglvendor

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the EGL vendor config writer Graft node.
const NodeID graft.ID = "adapter.eglvendor"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Writer, error) {
			return NewWriter(), nil
		},
	})
}
