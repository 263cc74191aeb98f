package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/alexferreiraaf/osmaster/docs" // swag generated
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/config"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything mounted under /v1.
type Handlers struct {
	Orders      *handlers.OrderHandler
	Attachments *handlers.AttachmentHandler
	Roster      *handlers.RosterHandler
	Auth        *handlers.AuthHandler
	Suggestion  *handlers.SuggestionHandler
	Export      *handlers.ExportHandler
}

// Run wires the application, serves HTTP and shuts down gracefully once ctx
// is cancelled. In-flight attachment uploads are drained before returning.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: NewRouter(deps.handlers, deps.auth, logger),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := deps.attachments.Wait(shutdownCtx); err != nil {
		logger.Warn("attachment uploads still running at shutdown", zap.Error(err))
	}
	return nil
}

// NewRouter builds the gin engine. Everything except ping, swagger and the
// public auth endpoints requires a bearer session.
func NewRouter(h Handlers, auth usecase.IAuthUseCase, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(middleware.Recovery(logger.Named("http")))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth, middleware.RequireAuth(auth))

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.RequireAuth(auth))
	addOrderRoutes(private, h.Orders, h.Attachments, h.Suggestion, h.Export)
	addEmployeeRoutes(private, h.Roster)

	return router
}
