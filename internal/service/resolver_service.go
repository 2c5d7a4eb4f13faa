package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/model"
	"utme_prep_backend/internal/parser"
	"utme_prep_backend/internal/util"
	"utme_prep_backend/pkg/logger"
	"utme_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResolverService 五级回退解析器。层级顺序固定：
// 内嵌当前批次 → 内嵌上一周期 → 归档当前周期 → 归档上一周期 → 内置样题。
// 第一个产出 ≥1 条合格记录的层级直接胜出，后面的层级不再尝试。
type ResolverService struct {
	cfg      *config.Config
	period   model.Period
	clusters []model.ClusterDefinition

	Fetcher    *FetcherService
	Normalizer *NormalizerService
	Validator  *ValidatorService
	Cache      *SubjectCache

	embeddedCurrent  []model.RawQuestion
	embeddedPrevious []model.RawQuestion
}

func NewResolverService(cfg *config.Config, fetcher *FetcherService, normalizer *NormalizerService, validator *ValidatorService, cache *SubjectCache) *ResolverService {
	clusters := make([]model.ClusterDefinition, 0, len(cfg.Quiz.Clusters))
	for _, c := range cfg.Quiz.Clusters {
		clusters = append(clusters, model.ClusterDefinition{Name: c.Name, Subjects: c.Subjects})
	}

	return &ResolverService{
		cfg:              cfg,
		period:           model.Period(cfg.Quiz.Period),
		clusters:         clusters,
		Fetcher:          fetcher,
		Normalizer:       normalizer,
		Validator:        validator,
		Cache:            cache,
		embeddedCurrent:  loadEmbeddedFile(normalizer, cfg.Embedded.CurrentFile, "current"),
		embeddedPrevious: loadEmbeddedFile(normalizer, cfg.Embedded.PreviousFile, "previous"),
	}
}

func loadEmbeddedFile(normalizer *NormalizerService, path, batch string) []model.RawQuestion {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn("embedded payload unreadable, tier starts empty",
			zap.String("batch", batch), zap.String("path", path), zap.Error(err))
		return nil
	}
	raws, dropped, err := normalizer.DecodeEmbedded(data)
	if err != nil {
		logger.Log.Warn("embedded payload undecodable, tier starts empty",
			zap.String("batch", batch), zap.String("path", path), zap.Error(err))
		return nil
	}
	if dropped > 0 {
		logger.Log.Warn("embedded payload contained unrecognizable records",
			zap.String("batch", batch), zap.Int("dropped", dropped))
	}
	return raws
}

// Period 当前配置的备考周期
func (r *ResolverService) Period() model.Period {
	return r.period
}

// Clusters 配置的组合考定义（顺序即配置顺序）
func (r *ResolverService) Clusters() []model.ClusterDefinition {
	return r.clusters
}

// SubjectsFor 确定一个页面需要哪些科目，依次尝试：
// 页面标识里的组合考名 → 单科目元数据 → 逗号分隔列表（过滤掉无归档映射的科目）→ 空。
func (r *ResolverService) SubjectsFor(page model.PageContext) []string {
	if cluster, ok := model.MatchCluster(page.PageID, r.clusters); ok {
		return cluster.Subjects
	}
	if s := strings.TrimSpace(page.Subject); s != "" {
		return []string{s}
	}
	if page.SubjectList != "" {
		var subjects []string
		for _, s := range model.SplitSubjectList(page.SubjectList) {
			if r.Fetcher.KnownSubject(s) {
				subjects = append(subjects, s)
			}
		}
		return subjects
	}
	return nil
}

// Resolve 为一个页面解析题目集。除了五级全空这一防御性分支外不会失败；
// 抓取、解析、校验层面的失败都在内部吸收并记日志。
func (r *ResolverService) Resolve(ctx context.Context, page model.PageContext) (model.Resolution, error) {
	if res, ok := r.resolveEmbedded(r.embeddedCurrent, page, model.TierEmbeddedCurrent); ok {
		return r.won(res), nil
	}
	if res, ok := r.resolveEmbedded(r.embeddedPrevious, page, model.TierEmbeddedPrevious); ok {
		return r.won(res), nil
	}

	if subjects := r.SubjectsFor(page); len(subjects) > 0 {
		if records := r.fetchTier(ctx, subjects, r.period); len(records) > 0 {
			return r.won(model.Resolution{Records: records, Tier: model.TierArchiveCurrent}), nil
		}
		if prev, ok := r.period.Previous(); ok {
			if records := r.fetchTier(ctx, subjects, prev); len(records) > 0 {
				return r.won(model.Resolution{Records: records, Tier: model.TierArchivePrevious, UsingFallbackData: true}), nil
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return model.Resolution{}, err
	}

	if records := r.Validator.FilterAcceptable(builtinSampleRecords()); len(records) > 0 {
		return r.won(model.Resolution{Records: records, Tier: model.TierBuiltinSample}), nil
	}

	return model.Resolution{}, util.ErrResolutionExhausted
}

func (r *ResolverService) won(res model.Resolution) model.Resolution {
	monitoring.ResolutionsByTier.WithLabelValues(string(res.Tier)).Inc()
	logger.Log.Info("question set resolved",
		zap.String("tier", string(res.Tier)),
		zap.Int("records", len(res.Records)),
		zap.Bool("usingFallbackData", res.UsingFallbackData))
	return res
}

func (r *ResolverService) resolveEmbedded(raws []model.RawQuestion, page model.PageContext, tier model.SourceTier) (model.Resolution, bool) {
	if len(raws) == 0 {
		return model.Resolution{}, false
	}
	normalized := r.Normalizer.NormalizeAll(raws, "", page.Subject)
	accepted := r.Validator.FilterAcceptable(normalized)
	if rejected := len(normalized) - len(accepted); rejected > 0 {
		monitoring.ValidationRejections.Add(float64(rejected))
	}
	if len(accepted) == 0 {
		return model.Resolution{}, false
	}
	return model.Resolution{Records: accepted, Tier: tier, UsingFallbackData: tier.Stale()}, true
}

// fetchTier 对一个科目集合做有界并发抓取，输出按科目顺序拼接。
// 单科目失败只贡献零条记录，不影响同层其余科目。
func (r *ResolverService) fetchTier(ctx context.Context, subjects []string, period model.Period) []model.QuestionRecord {
	g, gctx := errgroup.WithContext(ctx)
	if n := r.cfg.Archive.Concurrency; n > 0 {
		g.SetLimit(n)
	}

	results := make([][]model.QuestionRecord, len(subjects))
	for i, subject := range subjects {
		g.Go(func() error {
			results[i] = r.resolveSubject(gctx, subject, period)
			return nil
		})
	}
	g.Wait()

	var merged []model.QuestionRecord
	for _, records := range results {
		merged = append(merged, records...)
	}
	return merged
}

func (r *ResolverService) resolveSubject(ctx context.Context, subject string, period model.Period) []model.QuestionRecord {
	records, err := r.Cache.GetOrLoad(subject, period, func() ([]model.QuestionRecord, error) {
		return r.fetchSubject(ctx, subject, period)
	})
	if err != nil {
		monitoring.FetchFailures.WithLabelValues(strings.ToLower(subject)).Inc()
		logger.Log.Warn("subject fetch failed, contributing no records",
			zap.String("subject", subject), zap.Int("period", int(period)), zap.Error(err))
		return nil
	}
	return records
}

// fetchSubject 抓取并解析单科目归档文件，返回显式的成功/失败，
// 吸收成空结果的决定留给上层。
func (r *ResolverService) fetchSubject(ctx context.Context, subject string, period model.Period) ([]model.QuestionRecord, error) {
	path, ok := r.Fetcher.ArchivePath(period, subject)
	if !ok {
		return nil, fmt.Errorf("no archive filename mapping for subject %q", subject)
	}

	raw, err := r.Fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	label := parser.DetectSubject(r.Fetcher.SubjectFilename(subject))
	if label == "" {
		label = parser.FallbackSubject(subject)
	}

	parsed := parser.Parse(raw, label)
	accepted := r.Validator.FilterAcceptable(parsed)
	if rejected := len(parsed) - len(accepted); rejected > 0 {
		monitoring.ValidationRejections.Add(float64(rejected))
	}
	return accepted, nil
}

// Metadata 组装随题目返回的元信息
func (r *ResolverService) Metadata(page model.PageContext, res model.Resolution) model.QuizMetadata {
	subjects := r.SubjectsFor(page)

	label := strings.TrimSpace(page.Subject)
	timer := r.cfg.Quiz.SingleTimerMinutes
	if cluster, ok := model.MatchCluster(page.PageID, r.clusters); ok {
		label = cluster.Name
		timer = r.cfg.Quiz.ClusterTimerMinutes
	}
	if label == "" {
		label = "General"
	}

	return model.QuizMetadata{
		Subject:           label,
		Subjects:          subjects,
		Period:            int(r.period),
		DayRange:          r.period.DayRange(),
		GeneratedDate:     r.cfg.Quiz.GeneratedDate,
		ValidationStatus:  r.cfg.Quiz.ValidationStatus,
		TotalQuestions:    len(res.Records),
		TimerMinutes:      timer,
		Tier:              string(res.Tier),
		UsingFallbackData: res.UsingFallbackData,
	}
}

// ClusterReadiness 一个组合考的就绪状态
type ClusterReadiness struct {
	Name            string   `json:"name"`
	Ready           bool     `json:"ready"`
	MissingSubjects []string `json:"missingSubjects"`
}

// CheckClusterReadiness 检查每个组合考的必修科目当前是否都能解析出题目
func (r *ResolverService) CheckClusterReadiness(ctx context.Context) []ClusterReadiness {
	out := make([]ClusterReadiness, 0, len(r.clusters))
	for _, cluster := range r.clusters {
		cr := ClusterReadiness{Name: cluster.Name, MissingSubjects: []string{}}
		for _, subject := range cluster.Subjects {
			if len(r.resolveSubject(ctx, subject, r.period)) == 0 {
				cr.MissingSubjects = append(cr.MissingSubjects, subject)
			}
		}
		cr.Ready = len(cr.MissingSubjects) == 0
		out = append(out, cr)
	}
	return out
}
