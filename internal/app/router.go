package app

import (
	"utme_prep_backend/internal/middleware"
	"utme_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.RequestLogger())
	{
		api.GET("/health", c.health.HealthCheck)

		// 测验解析
		api.GET("/quiz/:page", c.quiz.GetQuiz)
		api.GET("/period", c.quiz.GetPeriod)
		api.POST("/session/reset", c.quiz.ResetSession)

		// 组合考
		api.GET("/clusters", c.cluster.ListClusters)
		api.GET("/clusters/readiness", c.cluster.GetReadiness)

		// 投稿工具
		api.POST("/questions/validate", c.validation.ValidateDocument)
	}
}
