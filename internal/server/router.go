package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"piterface-backend/internal/health"
	"piterface-backend/internal/remote"
	"piterface-backend/internal/shared/config"
	"piterface-backend/internal/shared/server/middleware"
	"piterface-backend/internal/shared/server/respond"
)

// rootMessage is the landing payload used by deploy smoke tests.
const rootMessage = "Predator12 backend is running"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins()),
	)

	healthSvc := health.NewService()
	ctl, err := remote.NewControl(remote.DefaultSettings())
	if err != nil {
		// DefaultSettings always validates; reaching this is a bug.
		log.Fatalf("remote control init: %v", err)
	}
	remoteHandler := remote.NewHandler(ctl)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Check())
	})
	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"message": rootMessage})
	})

	api := r.Group("/api/v1")
	remoteHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
