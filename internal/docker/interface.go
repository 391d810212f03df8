// internal/docker/interface.go
package docker

import (
	"context"

	"github.com/rusenback/dockmon/internal/model"
)

// Querier interface mahdollistaa mockauksen testeissä
type Querier interface {
	ProcessList(ctx context.Context) (map[string]model.Process, error)
	Stats(ctx context.Context) (map[string]model.Stats, error)
}

// Inspector probes a single container's state.
type Inspector interface {
	IsRunning(ctx context.Context, name string) (bool, error)
}

// Varmista että toteutukset täyttävät interfacet
var (
	_ Querier   = (*Query)(nil)
	_ Inspector = (*Client)(nil)
)
