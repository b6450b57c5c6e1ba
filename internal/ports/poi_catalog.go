package ports

import (
	"context"

	"tourist-route-service/internal/domain"
)

// Port: a boundary for reading POI entries from the catalog store.
// The catalog is read-only to this service; import jobs own the writes.
type POICatalog interface {
	// Return all POIs available for route planning.
	ListPOIs(ctx context.Context) ([]domain.POI, error)
	// Return a single POI by id, or domain.ErrNotFound.
	GetPOI(ctx context.Context, id string) (*domain.POI, error)
}
