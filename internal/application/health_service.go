package application

import (
	"context"

	"github.com/alorle/streamline/internal/metrics"
	"github.com/alorle/streamline/internal/port/driven"
)

// catalogStatusProvider is the part of CatalogService the health check needs.
type catalogStatusProvider interface {
	Status() CatalogStatus
}

// HealthService orchestrates health checks for the application and its dependencies.
type HealthService struct {
	db      driven.FavoritesRepository
	catalog catalogStatusProvider
}

// NewHealthService creates a new health check service.
func NewHealthService(db driven.FavoritesRepository, catalog *CatalogService) *HealthService {
	return &HealthService{
		db:      db,
		catalog: catalog,
	}
}

// ComponentHealth represents the health status of a single component.
type ComponentHealth struct {
	Status string // "ok", "pending" or "error"
	Error  string // empty unless status is "error"
}

// HealthStatus represents the overall health status of the application.
type HealthStatus struct {
	Status   string          // "ok" if all components are healthy, "degraded" otherwise
	DB       ComponentHealth // favorites database health
	Playlist ComponentHealth // outcome of the last playlist refresh
	Channels int             // channels in the current catalog
}

// Check performs health checks on all dependencies.
// A catalog that has not been loaded yet is reported as pending and does not
// degrade the overall status; a failed last refresh does.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status: "ok",
	}

	if err := s.db.Ping(ctx); err != nil {
		status.DB = ComponentHealth{
			Status: "error",
			Error:  err.Error(),
		}
		status.Status = "degraded"
	} else {
		status.DB = ComponentHealth{
			Status: "ok",
		}
	}

	catalog := s.catalog.Status()
	status.Channels = catalog.Channels
	switch {
	case catalog.LastError != nil:
		status.Playlist = ComponentHealth{
			Status: "error",
			Error:  catalog.LastError.Error(),
		}
		status.Status = "degraded"
	case !catalog.Loaded:
		status.Playlist = ComponentHealth{
			Status: "pending",
		}
	default:
		status.Playlist = ComponentHealth{
			Status: "ok",
		}
	}

	if status.Status != "ok" {
		metrics.RecordHealthCheckFailure()
	}

	return status
}
