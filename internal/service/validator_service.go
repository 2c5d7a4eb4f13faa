package service

import (
	"fmt"
	"strings"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/model"
	"utme_prep_backend/internal/parser"
)

// 文档校验结论
const (
	ReportPassed  = "PASSED"
	ReportPartial = "PARTIAL"
	ReportFailed  = "FAILED"
)

// ValidatorService 记录校验。
// 两档门槛是刻意分开的：严格门槛（四个选项齐全）用于解析管线，
// 宽松门槛（≥2 个选项）只用于投稿/导出工具，缺选项的题宁可少显示一道也不能上屏。
type ValidatorService struct {
	ExpectedPerSubject int
}

func NewValidatorService(cfg *config.Config) *ValidatorService {
	return &ValidatorService{ExpectedPerSubject: cfg.Quiz.ExpectedPerSubject}
}

// IsAcceptable 严格门槛：题干非空、A-D 四个选项都非空、答案是 A-D 之一。
func (s *ValidatorService) IsAcceptable(rec model.QuestionRecord) bool {
	if strings.TrimSpace(rec.Text) == "" {
		return false
	}
	for _, key := range model.ChoiceKeys {
		if strings.TrimSpace(rec.Option(key)) == "" {
			return false
		}
	}
	return model.IsChoiceKey(string(rec.Answer))
}

// IsAcceptableLoose 宽松门槛：题干非空、至少两个非空选项、答案落在非空选项里。
func (s *ValidatorService) IsAcceptableLoose(rec model.QuestionRecord) bool {
	if strings.TrimSpace(rec.Text) == "" {
		return false
	}
	if rec.OptionCount() < 2 {
		return false
	}
	if !model.IsChoiceKey(string(rec.Answer)) {
		return false
	}
	return strings.TrimSpace(rec.Option(rec.Answer)) != ""
}

// FilterAcceptable 按严格门槛过滤，保持输入顺序。不修复，只丢弃。
func (s *ValidatorService) FilterAcceptable(records []model.QuestionRecord) []model.QuestionRecord {
	out := make([]model.QuestionRecord, 0, len(records))
	for _, rec := range records {
		if s.IsAcceptable(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// DocumentReport 一份题目文档的校验报告
type DocumentReport struct {
	Filename      string   `json:"filename"`
	Subject       string   `json:"subject"`
	QuestionCount int      `json:"questionCount"`
	AcceptedCount int      `json:"acceptedCount"`
	ExpectedCount int      `json:"expectedCount"`
	Status        string   `json:"status"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
}

// ValidateDocument 解析一份投稿文档并出具逐题报告（宽松门槛）。
// 报告项带题号定位，重复题干只警告不拒绝。
func (s *ValidatorService) ValidateDocument(filename, rawText string) DocumentReport {
	subject := parser.DetectSubject(filename)
	if subject == "" {
		subject = parser.FallbackSubject(filename)
	}

	records := parser.Parse(rawText, subject)

	report := DocumentReport{
		Filename:      filename,
		Subject:       subject,
		QuestionCount: len(records),
		ExpectedCount: s.ExpectedPerSubject,
		Errors:        []string{},
		Warnings:      []string{},
	}

	seenText := map[string]int{}
	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("question %d: empty question text", rec.ID))
		} else if first, dup := seenText[rec.Text]; dup {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("question %d: duplicate of question %d", rec.ID, first))
		} else {
			seenText[rec.Text] = rec.ID
		}

		if rec.OptionCount() < 2 {
			report.Errors = append(report.Errors,
				fmt.Sprintf("question %d: only %d option(s), need at least 2", rec.ID, rec.OptionCount()))
		} else if rec.OptionCount() < len(model.ChoiceKeys) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("question %d: incomplete option set (%d of %d)", rec.ID, rec.OptionCount(), len(model.ChoiceKeys)))
		}

		switch {
		case !rec.HasAnswer():
			report.Errors = append(report.Errors, fmt.Sprintf("question %d: missing answer", rec.ID))
		case !model.IsChoiceKey(string(rec.Answer)):
			report.Errors = append(report.Errors,
				fmt.Sprintf("question %d: answer %q is not one of A-D", rec.ID, rec.Answer))
		case strings.TrimSpace(rec.Option(rec.Answer)) == "":
			report.Errors = append(report.Errors,
				fmt.Sprintf("question %d: answer %s points at an empty option", rec.ID, rec.Answer))
		}

		if s.IsAcceptableLoose(rec) {
			report.AcceptedCount++
		}
	}

	if len(records) != s.ExpectedPerSubject {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("expected %d questions, found %d", s.ExpectedPerSubject, len(records)))
	}

	switch {
	case report.AcceptedCount == 0:
		report.Status = ReportFailed
	case len(report.Errors) == 0 && len(records) == s.ExpectedPerSubject:
		report.Status = ReportPassed
	default:
		report.Status = ReportPartial
	}

	return report
}
