package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glhost/internal/adapters/cachestore"
	"go.trai.ch/glhost/internal/adapters/eglvendor"
	"go.trai.ch/glhost/internal/adapters/logger"
	"go.trai.ch/glhost/internal/adapters/patchelf"
	"go.trai.ch/glhost/internal/adapters/telemetry"
	"go.trai.ch/glhost/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cachestore.NodeID,
			patchelf.NodeID,
			eglvendor.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			patcher, err := graft.Dep[ports.Patcher](ctx)
			if err != nil {
				return nil, err
			}
			vendor, err := graft.Dep[*eglvendor.Writer](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(store, patcher, vendor, tel, log), nil
		},
	})
}
