package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sm8ta/motorcare_service/internal/config"
	"github.com/sm8ta/motorcare_service/internal/core/ports"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
	motorcycleHandler *MotorcycleHandler,
	serviceRecordHandler *ServiceRecordHandler,
	complaintHandler *ComplaintHandler,
	reminderHandler *ReminderHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Env != "test" {
		router.Use(gin.Logger())
	}

	// CORS
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := router.Group("")
	protected.Use(AuthMiddleware(tokenService))

	motorcycles := protected.Group("/motorcycles")
	{
		motorcycles.POST("", motorcycleHandler.CreateMotorcycle)
		motorcycles.GET("", motorcycleHandler.GetMyMotorcycles)
		motorcycles.GET("/:id", motorcycleHandler.GetMotorcycle)
		motorcycles.PUT("/:id", motorcycleHandler.UpdateMotorcycle)
		motorcycles.DELETE("/:id", motorcycleHandler.DeleteMotorcycle)
	}

	serviceRecords := protected.Group("/service-records")
	{
		serviceRecords.POST("", serviceRecordHandler.CreateServiceRecord)
		serviceRecords.GET("", serviceRecordHandler.GetServiceRecords)
	}

	complaints := protected.Group("/complaints")
	{
		complaints.POST("", complaintHandler.CreateComplaint)
		complaints.GET("", complaintHandler.GetComplaints)
	}

	reminders := protected.Group("/reminders")
	{
		reminders.POST("", reminderHandler.CreateReminder)
		reminders.GET("", reminderHandler.GetReminders)
		reminders.PUT("/:id", reminderHandler.UpdateReminder)
		reminders.DELETE("/:id", reminderHandler.DeleteReminder)
	}

	return &Router{
		router: router,
		server: &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second},
	}, nil
}

// corsConfig treats an empty list or "*" as allow-all, which cannot be
// combined with credentials.
func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}

	var origins []string
	for _, origin := range strings.Split(allowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			origins = nil
			break
		}
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Serve blocks until the listener fails or Shutdown is called. A shutdown
// is not an error.
func (r *Router) Serve(addr string) error {
	r.server.Addr = addr
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
