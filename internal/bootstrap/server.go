package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/iedaejin/capstones-supervisors-form/internal/api"
	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/config"
	"github.com/iedaejin/capstones-supervisors-form/internal/handlers"
	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
	"github.com/iedaejin/capstones-supervisors-form/internal/registry"
	"github.com/iedaejin/capstones-supervisors-form/internal/store"
)

// SetupHTTPServer creates and configures the HTTP server.
func SetupHTTPServer(
	cfg *config.Config,
	pipeline *registry.Pipeline,
	catalogs *catalog.Provider,
	records *store.Store,
	log logger.Logger,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := handlers.NewRegistrationHandler(pipeline, catalogs, records, log)
	return api.NewRouter(handler, cfg, log)
}
