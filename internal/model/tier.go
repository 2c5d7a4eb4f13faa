package model

// SourceTier 题目来源层级，按回退顺序排列。
type SourceTier string

const (
	TierEmbeddedCurrent  SourceTier = "embedded-current"
	TierEmbeddedPrevious SourceTier = "embedded-previous"
	TierArchiveCurrent   SourceTier = "archive-current-period"
	TierArchivePrevious  SourceTier = "archive-previous-period"
	TierBuiltinSample    SourceTier = "builtin-sample"
)

// TierOrder 解析时严格遵循的尝试顺序
var TierOrder = []SourceTier{
	TierEmbeddedCurrent,
	TierEmbeddedPrevious,
	TierArchiveCurrent,
	TierArchivePrevious,
	TierBuiltinSample,
}

// Stale reports whether records served from this tier are a previous-cycle
// set, i.e. the UI should show the stale-data advisory.
func (t SourceTier) Stale() bool {
	return t == TierEmbeddedPrevious || t == TierArchivePrevious
}

// Resolution 一次解析的产出：记录列表 + 命中的层级。
type Resolution struct {
	Records           []QuestionRecord `json:"records"`
	Tier              SourceTier       `json:"tier"`
	UsingFallbackData bool             `json:"usingFallbackData"`
}

// QuizMetadata 随题目一起返回给前端的元信息。
type QuizMetadata struct {
	Subject           string   `json:"subject"`
	Subjects          []string `json:"subjects"`
	Period            int      `json:"period"`
	DayRange          string   `json:"dayRange"`
	GeneratedDate     string   `json:"generatedDate"`
	ValidationStatus  string   `json:"validationStatus"`
	TotalQuestions    int      `json:"totalQuestions"`
	TimerMinutes      int      `json:"timerMinutes"`
	Tier              string   `json:"tier"`
	UsingFallbackData bool     `json:"usingFallbackData"`
}
