package service

import (
	"html"

	"utme_prep_backend/internal/model"
)

// SanitizeRecords 返回文本字段做过 HTML 转义的记录副本，
// 供把题目直接嵌进页面的调用方使用。原记录不动。
func SanitizeRecords(records []model.QuestionRecord) []model.QuestionRecord {
	out := make([]model.QuestionRecord, 0, len(records))
	for _, rec := range records {
		clean := rec
		clean.Text = html.EscapeString(rec.Text)
		clean.Explanation = html.EscapeString(rec.Explanation)
		clean.Exception = html.EscapeString(rec.Exception)
		clean.Options = make(map[model.ChoiceKey]string, len(rec.Options))
		for key, text := range rec.Options {
			clean.Options[key] = html.EscapeString(text)
		}
		out = append(out, clean)
	}
	return out
}
