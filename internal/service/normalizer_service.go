package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"utme_prep_backend/internal/model"
)

// NormalizerService 把嵌入数据的两种线上形态归一到规范记录。
// 扁平字段 optionA..optionD 与嵌套 options 映射同时存在时，扁平字段覆盖嵌套值。
type NormalizerService struct{}

func NewNormalizerService() *NormalizerService {
	return &NormalizerService{}
}

// rawShape 嵌入记录的形态判别结果
type rawShape int

const (
	shapeUnknown rawShape = iota
	shapeFlat
	shapeNested
)

func classifyShape(raw model.RawQuestion) rawShape {
	for _, key := range model.ChoiceKeys {
		if strings.TrimSpace(raw.FlatOption(key)) != "" {
			return shapeFlat
		}
	}
	if len(raw.Options) > 0 {
		return shapeNested
	}
	return shapeUnknown
}

// DecodeEmbedded 解码一份嵌入题目载荷（JSON 数组）。
// 形态无法判别的元素直接丢弃而不是硬凑空字符串，畸形数据在测试里可见。
// 只有载荷本身不是合法 JSON 数组时才报错。
func (s *NormalizerService) DecodeEmbedded(data []byte) ([]model.RawQuestion, int, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, 0, fmt.Errorf("embedded payload is not a JSON array: %w", err)
	}

	var (
		out     []model.RawQuestion
		dropped int
	)
	for _, el := range elements {
		var raw model.RawQuestion
		if err := json.Unmarshal(el, &raw); err != nil {
			dropped++
			continue
		}
		if classifyShape(raw) == shapeUnknown {
			dropped++
			continue
		}
		out = append(out, raw)
	}
	return out, dropped, nil
}

// Normalize 把一条原始记录转为规范记录。
// 科目解析顺序固定：记录自带 → subjectHint → 页面科目 → "General"，
// 批量归一异构来源的调用方依赖这个顺序。
func (s *NormalizerService) Normalize(raw model.RawQuestion, subjectHint, pageSubject string) model.QuestionRecord {
	options := map[model.ChoiceKey]string{}
	for key, text := range raw.Options {
		if !model.IsChoiceKey(key) {
			continue
		}
		if v := strings.TrimSpace(text); v != "" {
			options[model.ChoiceKey(key)] = v
		}
	}
	for _, key := range model.ChoiceKeys {
		if v := strings.TrimSpace(raw.FlatOption(key)); v != "" {
			options[key] = v
		}
	}

	subject := firstNonBlank(raw.Subject, subjectHint, pageSubject, "General")

	return model.QuestionRecord{
		ID:          raw.ID,
		Subject:     subject,
		Text:        strings.TrimSpace(raw.Text),
		Options:     options,
		Answer:      model.ChoiceKey(strings.TrimSpace(raw.Answer)),
		Explanation: strings.TrimSpace(raw.Explanation),
		Exception:   strings.TrimSpace(raw.Exception),
	}
}

// NormalizeAll 逐条归一，保持输入顺序
func (s *NormalizerService) NormalizeAll(raws []model.RawQuestion, subjectHint, pageSubject string) []model.QuestionRecord {
	records := make([]model.QuestionRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, s.Normalize(raw, subjectHint, pageSubject))
	}
	return records
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
