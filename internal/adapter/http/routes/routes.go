package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	_ "arton_garage/docs"
	"arton_garage/internal/infrastructure/config"
	"arton_garage/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1    = "/v1"
	PathAdmin = "/admin"

	shutdownTimeout = 10 * time.Second
)

var errRouteNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "Route not found", http.StatusNotFound)

// Run builds the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	app, err := NewApplication(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[boot][http] listening addr=%s env=%s storage=%s", srv.Addr, cfg.Env, cfg.StorageBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[boot][http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router returns the gin engine with every route registered.
func (a *Application) Router() *gin.Engine {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, a.Config)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addPublicRoutes(v1, a)

	admin := v1.Group(PathAdmin, a.auth.RequireAdmin())
	addAdminRoutes(admin, a)

	router.NoRoute(adminFallback(a.auth.RequireAdmin(), a.dashboard.Overview))
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	switch {
	case !cfg.IsProduction():
		corsCfg.AllowAllOrigins = true
	case len(cfg.CORSAllowedOrigins) > 0:
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	default:
		log.Warnf("[boot][http] CORS_ALLOWED_ORIGINS empty in production; cross-origin requests are not allowed")
		return
	}
	router.Use(cors.New(corsCfg))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// adminFallback serves the dashboard for unmatched admin GET paths, behind
// the same authentication as the admin group. Everything else is a 404.
func adminFallback(requireAdmin, dashboard gin.HandlerFunc) gin.HandlerFunc {
	prefix := PathV1 + PathAdmin + "/"
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.JSON(errRouteNotFound.HTTPStatus, errRouteNotFound.ToHTTPError())
			return
		}
		requireAdmin(c)
		if c.IsAborted() {
			return
		}
		dashboard(c)
	}
}
