// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"blogtags/docs"
	"blogtags/internal/completion"
	"blogtags/internal/shared/config"
	"blogtags/internal/shared/middleware"
	"blogtags/internal/tags"
	"blogtags/internal/web"
	"blogtags/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "blogtags"

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	completer completion.Completer
	log       *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, completer completion.Completer, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		completer: completer,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) error {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(middleware.MethodNotAllowed())
	engine.NoRoute(middleware.NotFound())

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Web page and its assets
	if err := r.setupWebRoutes(engine); err != nil {
		return err
	}

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupTagRoutes(api)
	}

	r.setupDocsRoutes(engine)
	return nil
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.completer == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     "no completion provider configured",
				"timestamp": time.Now(),
				"service":   serviceName,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"model":       r.config.OpenAI.Model,
			"timestamp":   time.Now(),
		})
	})
}

// setupWebRoutes serves the tag composer page
func (r *Router) setupWebRoutes(engine *gin.Engine) error {
	webController := web.NewController(web.NewPageData(r.config.GetAPIBasePath()))
	return web.SetupWebRoutes(engine, webController)
}

// setupTagRoutes configures the tag generation endpoint
func (r *Router) setupTagRoutes(rg *gin.RouterGroup) {
	tagService := tags.NewService(r.completer, r.log)
	tagController := tags.NewController(tagService, r.log)

	tags.SetupTagRoutes(rg, tagController)
}

// setupDocsRoutes serves the OpenAPI document and UI
func (r *Router) setupDocsRoutes(engine *gin.Engine) {
	docs.SwaggerInfo.BasePath = r.config.GetAPIBasePath()
	docs.SwaggerInfo.Version = r.config.APIVersion
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
