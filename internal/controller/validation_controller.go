package controller

import (
	"utme_prep_backend/internal/service"
	"utme_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ValidationController struct {
	Validator *service.ValidatorService
}

func NewValidationController(validator *service.ValidatorService) *ValidationController {
	return &ValidationController{Validator: validator}
}

// ValidateDocumentRequest 投稿文档校验请求
type ValidateDocumentRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// @Summary 校验投稿题目文档
// @Description 解析一份题目文本并出具逐题校验报告（投稿用宽松门槛）
// @Tags 投稿
// @Accept json
// @Produce json
// @Param body body ValidateDocumentRequest true "文件名与原始文本"
// @Success 200 {object} util.Response
// @Router /api/questions/validate [post]
func (c *ValidationController) ValidateDocument(ctx *gin.Context) {
	var req ValidateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.Validator.ValidateDocument(req.Filename, req.Content))
}
