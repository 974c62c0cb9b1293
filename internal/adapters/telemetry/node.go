package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

// EnvProgress enables the progrock recorder. Progress recording is opt-in
// because the wrapper usually ends by exec-ing the wrapped binary.
const EnvProgress = "GLHOST_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv(EnvProgress) != "" {
				return NewTapeRecorder(), nil
			}
			return NewNoOp(), nil
		},
	})
}
