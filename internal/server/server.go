package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"projectmgmt/internal/config"
	"projectmgmt/internal/graph"
	"projectmgmt/internal/handlers"
	"projectmgmt/internal/middlewares"
	"projectmgmt/internal/repositories"
	"projectmgmt/internal/routes"
	"projectmgmt/internal/services"
)

// NewServer opens the configured store and builds the HTTP server. The
// returned func closes the store and must be called after shutdown.
func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*http.Server, func(), error) {
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	router := NewRouter(cfg, logger, st.clients, st.projects)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, st.close, nil
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	clientRepo repositories.ClientRepository,
	projectRepo repositories.ProjectRepository,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Dependency injection
	clientService := services.NewClientService(clientRepo, logger)
	projectService := services.NewProjectService(projectRepo, clientRepo, logger)
	schema := graph.NewSchema(clientService, projectService)
	graphqlHandler := handlers.NewGraphQLHandler(schema, cfg.GraphiQLEnabled, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))
	router.Use(middlewares.CORS(cfg.CORSAllowedOrigins))

	routes.RegisterRoutes(router, graphqlHandler)

	return router
}
