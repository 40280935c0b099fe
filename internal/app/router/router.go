// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "cropscience_backend/internal/feature/auth/transport/handler"
	categoryhandler "cropscience_backend/internal/feature/categories/transport/handler"
	crophandler "cropscience_backend/internal/feature/crops/transport/handler"
	"cropscience_backend/internal/platform/http/handler"
	jwtmw "cropscience_backend/internal/platform/jwt"
)

// NewRouter wires every endpoint. Registration, login and token refresh are
// public; everything else requires a bearer access token.
func NewRouter(jwtSecret string, auth *authhandler.AuthHandler,
	categories *categoryhandler.CategoryHandler, crops *crophandler.CropHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Public auth endpoints
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/token/refresh", auth.Refresh)

	// Authenticated routes
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.POST("/auth/logout", auth.Logout)

		protected.GET("/categories", categories.List)
		protected.POST("/categories", categories.Create)
		protected.GET("/categories/:id", categories.Get)
		protected.PUT("/categories/:id", categories.Update)
		protected.PATCH("/categories/:id", categories.Patch)
		protected.DELETE("/categories/:id", categories.Delete)

		protected.GET("/crops", crops.List)
		protected.POST("/crops", crops.Create)
		// Registered before :id so "export" is not captured as an ID.
		protected.GET("/crops/export", crops.Export)
		protected.GET("/crops/:id", crops.Get)
		protected.PUT("/crops/:id", crops.Update)
		protected.PATCH("/crops/:id", crops.Patch)
		protected.DELETE("/crops/:id", crops.Delete)
	}

	return r
}
