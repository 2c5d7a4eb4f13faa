package controller

import (
	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/model"
	"utme_prep_backend/internal/service"
	"utme_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Resolver *service.ResolverService
	Config   *config.Config
}

func NewQuizController(resolver *service.ResolverService, cfg *config.Config) *QuizController {
	return &QuizController{Resolver: resolver, Config: cfg}
}

// @Summary 获取页面题目集
// @Description 按五级回退顺序为页面解析题目，返回题目与元信息
// @Tags 测验
// @Produce json
// @Param page path string true "页面标识，如 quiz-physics 或 quiz-science-cluster-a"
// @Param subject query string false "单科目标签"
// @Param subjects query string false "逗号分隔的科目列表"
// @Param sanitize query bool false "对文本字段做 HTML 转义"
// @Success 200 {object} util.Response
// @Router /api/quiz/{page} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	page := model.PageContext{
		PageID:      ctx.Param("page"),
		Subject:     ctx.Query("subject"),
		SubjectList: ctx.Query("subjects"),
	}

	res, err := c.Resolver.Resolve(ctx.Request.Context(), page)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	records := res.Records
	if ctx.Query("sanitize") == "true" {
		records = service.SanitizeRecords(records)
	}

	util.Success(ctx, gin.H{
		"questions": records,
		"metadata":  c.Resolver.Metadata(page, res),
	})
}

// @Summary 当前备考周期信息
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/period [get]
func (c *QuizController) GetPeriod(ctx *gin.Context) {
	period := c.Resolver.Period()
	util.Success(ctx, gin.H{
		"period":           int(period),
		"dayStart":         period.DayStart(),
		"dayEnd":           period.DayEnd(),
		"dayRange":         period.DayRange(),
		"generatedDate":    c.Config.Quiz.GeneratedDate,
		"validationStatus": c.Config.Quiz.ValidationStatus,
	})
}

// @Summary 重置会话缓存
// @Description 清空按科目缓存的解析结果，下次请求重新抓取
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/session/reset [post]
func (c *QuizController) ResetSession(ctx *gin.Context) {
	c.Resolver.Cache.Reset()
	util.Success(ctx, gin.H{"reset": true})
}
