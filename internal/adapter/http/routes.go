package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
	"todolist/pkg/apierrors"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	categoryHandler *handlers.CategoryHandler,
	todoHandler *handlers.TodoHandler,
) {
	r.GET("/health", healthHandler.CheckHealth)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.POST("/categories", categoryHandler.CreateCategory)
		api.PUT("/categories/:id", categoryHandler.UpdateCategory)
		api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		api.GET("/todos", todoHandler.ListTodos)
		api.GET("/todos/:id", todoHandler.GetTodo)
		api.POST("/todos", todoHandler.CreateTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.PATCH("/todos/:id/toggle", todoHandler.ToggleTodo)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}

	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
		)
	})
}

func RegisterMetrics(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
