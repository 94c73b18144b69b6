package routes

import (
	"github.com/gin-gonic/gin"

	"jqt_lookup_backend/datasource"
	"jqt_lookup_backend/handlers"
	"jqt_lookup_backend/lookup"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, src datasource.Source) {
	// Initialize handlers
	lookupHandler := handlers.NewLookupHandler(lookup.NewService(src))
	healthHandler := handlers.NewHealthHandler(src)

	r.GET("/healthz", healthHandler.HealthCheck)
	r.GET("/api/lookup", lookupHandler.Lookup)

	// The query page itself
	r.StaticFile("/", "./web/index.html")
}
