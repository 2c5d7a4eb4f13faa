package model

import "strings"

// ChoiceKey 选项键（A/B/C/D）
type ChoiceKey string

const (
	ChoiceA ChoiceKey = "A"
	ChoiceB ChoiceKey = "B"
	ChoiceC ChoiceKey = "C"
	ChoiceD ChoiceKey = "D"
)

// ChoiceKeys 按显示顺序排列的全部选项键
var ChoiceKeys = []ChoiceKey{ChoiceA, ChoiceB, ChoiceC, ChoiceD}

// IsChoiceKey reports whether s is one of the four recognized choice letters.
func IsChoiceKey(s string) bool {
	switch ChoiceKey(s) {
	case ChoiceA, ChoiceB, ChoiceC, ChoiceD:
		return true
	}
	return false
}

// QuestionRecord 规范化后的单选题记录。解析或规范化产生后不再修改。
type QuestionRecord struct {
	ID          int                  `json:"id"`
	Subject     string               `json:"subject"`
	Text        string               `json:"text"`
	Options     map[ChoiceKey]string `json:"options"`
	Answer      ChoiceKey            `json:"answer,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
	Exception   string               `json:"exception,omitempty"`
}

// Option returns the option text for key, or "" when absent.
func (q QuestionRecord) Option(key ChoiceKey) string {
	if q.Options == nil {
		return ""
	}
	return q.Options[key]
}

// HasAnswer reports whether the record carries an answer key at all.
func (q QuestionRecord) HasAnswer() bool {
	return q.Answer != ""
}

// OptionCount 非空选项数
func (q QuestionRecord) OptionCount() int {
	n := 0
	for _, key := range ChoiceKeys {
		if strings.TrimSpace(q.Option(key)) != "" {
			n++
		}
	}
	return n
}

// RawQuestion 是嵌入数据的两种线上形态的合并视图：
// 扁平字段 optionA..optionD 或嵌套 options 映射。规范化时扁平字段优先。
type RawQuestion struct {
	ID          int               `json:"id"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text"`
	OptionA     string            `json:"optionA"`
	OptionB     string            `json:"optionB"`
	OptionC     string            `json:"optionC"`
	OptionD     string            `json:"optionD"`
	Options     map[string]string `json:"options"`
	Answer      string            `json:"answer"`
	Explanation string            `json:"explanation"`
	Exception   string            `json:"exception"`
}

// FlatOption returns the flat-shape option field for key ("" when unset).
func (r RawQuestion) FlatOption(key ChoiceKey) string {
	switch key {
	case ChoiceA:
		return r.OptionA
	case ChoiceB:
		return r.OptionB
	case ChoiceC:
		return r.OptionC
	case ChoiceD:
		return r.OptionD
	}
	return ""
}
