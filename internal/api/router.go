package api

import (
	"net/http"

	"tourist-route-service/internal/api/handlers"
	"tourist-route-service/internal/api/middleware"
	"tourist-route-service/internal/ports"
	"tourist-route-service/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(
	catalog ports.POICatalog,
	routeService *services.RouteService,
	quota *services.QuotaGuard,
	submissions *services.SubmissionService,
	jwtSecret string,
	logger *zap.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Recover(logger))

	poiHandler := &handlers.POIHandler{Catalog: catalog, Logger: logger}
	routeHandler := &handlers.RouteHandler{Service: routeService, Logger: logger}
	subHandler := &handlers.SubmissionHandler{Quota: quota, Service: submissions, Logger: logger}

	// Public catalog reads.
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/pois", poiHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/pois/{id}/submissions", subHandler.ListForPOI).Methods(http.MethodGet)

	// Authenticated write paths.
	authed := r.NewRoute().Subrouter()
	authed.Use(middleware.JWTAuth(jwtSecret))
	authed.HandleFunc("/routes", routeHandler.Generate).Methods(http.MethodPost)
	authed.HandleFunc("/submissions", subHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/submissions/check", subHandler.Check).Methods(http.MethodPost)

	return r
}
