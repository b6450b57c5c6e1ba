package ports

import (
	"context"

	"tourist-route-service/internal/domain"
)

// Port: write-once persistence for generated route audit records.
// No update or invalidation is exposed; record expiry is advisory
// metadata consumed by an external retention job.
type RouteStore interface {
	AddGeneratedRoute(ctx context.Context, rec domain.GeneratedRouteRecord) error
}
