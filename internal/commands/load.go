package commands

import (
	"context"
	"errors"
	"fmt"

	"evalgo.org/ontomapper/internal/ontology"
)

// loadOntology loads the configured sources and reports how many failed.
// Failed sources are tolerated; only cancellation is an error.
func loadOntology(ctx context.Context) (*ontology.Store, int, error) {
	store, err := ontology.Load(ctx, ontology.SourcesFromPaths(cfg.Ontology.Sources), logger)

	var loadErr *ontology.LoadError
	switch {
	case err == nil:
		return store, 0, nil
	case errors.As(err, &loadErr):
		return store, len(loadErr.Failures), nil
	default:
		return nil, 0, fmt.Errorf("failed to load ontology: %w", err)
	}
}
