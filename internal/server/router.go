package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joblyhq/jobly/internal/handlers"
	"github.com/joblyhq/jobly/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Companies *handlers.CompanyHandler
	Jobs      *handlers.JobHandler
	Users     *handlers.UserHandler
}

// NewRouter wires middleware and routes onto a gin engine.
func NewRouter(h Handlers, authmw *middleware.Auth, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))
	r.Use(authmw.Authenticate())

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/token", h.Auth.Login)

		companies := api.Group("/companies")
		{
			companies.GET("", h.Companies.List)
			companies.GET("/:handle", h.Companies.Get)
			companies.POST("", authmw.RequireAdmin(), h.Companies.Create)
			companies.PATCH("/:handle", authmw.RequireAdmin(), h.Companies.Update)
			companies.DELETE("/:handle", authmw.RequireAdmin(), h.Companies.Delete)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.Jobs.List)
			jobs.GET("/:id", h.Jobs.Get)
			jobs.POST("", authmw.RequireAdmin(), h.Jobs.Create)
			jobs.PATCH("/:id", authmw.RequireAdmin(), h.Jobs.Update)
			jobs.DELETE("/:id", authmw.RequireAdmin(), h.Jobs.Delete)
		}

		users := api.Group("/users")
		{
			users.POST("", authmw.RequireAdmin(), h.Users.Create)
			users.GET("", authmw.RequireAdmin(), h.Users.List)
			users.GET("/:username", authmw.RequireAdminOrSelf("username"), h.Users.Get)
			users.PATCH("/:username", authmw.RequireAdminOrSelf("username"), h.Users.Update)
			users.DELETE("/:username", authmw.RequireAdminOrSelf("username"), h.Users.Delete)
			users.POST("/:username/jobs/:id", authmw.RequireAdminOrSelf("username"), h.Users.Apply)
		}
	}

	return r
}
