package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glhost/internal/adapters/cachestore"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/config"       //nolint:depguard // Wired in app layer
	adapterfs "go.trai.ch/glhost/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/launcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/ldpath"       //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/lock"         //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/adapters/telemetry"    //nolint:depguard // Wired in app layer
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/glhost/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ldpath.NodeID,
			adapterfs.ScannerNodeID,
			cachestore.NodeID,
			lock.NodeID,
			builder.NodeID,
			launcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := graft.Dep[ports.CandidateResolver](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	bld, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	launch, err := graft.Dep[*launcher.Launcher](ctx)
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

	return New(cfg, candidates, scanner, store, locker, bld, launch, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
