package controller

import (
	"utme_prep_backend/internal/service"
	"utme_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClusterController struct {
	Resolver *service.ResolverService
}

func NewClusterController(resolver *service.ResolverService) *ClusterController {
	return &ClusterController{Resolver: resolver}
}

// @Summary 组合考定义列表
// @Tags 组合考
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/clusters [get]
func (c *ClusterController) ListClusters(ctx *gin.Context) {
	util.Success(ctx, c.Resolver.Clusters())
}

// @Summary 组合考就绪状态
// @Description 检查各组合考的必修科目当前是否都能解析出题目
// @Tags 组合考
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/clusters/readiness [get]
func (c *ClusterController) GetReadiness(ctx *gin.Context) {
	util.Success(ctx, c.Resolver.CheckClusterReadiness(ctx.Request.Context()))
}
