package controller

import (
	"utme_prep_backend/internal/service"
	"utme_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Cache *service.SubjectCache
}

func NewHealthController(cache *service.SubjectCache) *HealthController {
	return &HealthController{Cache: cache}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"subjectCache": gin.H{
				"entries": c.Cache.Len(),
			},
		},
	})
}
