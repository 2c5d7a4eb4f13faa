package parser

import (
	"regexp"
	"strconv"
	"strings"

	"utme_prep_backend/internal/model"
)

// 题目文本文件的行级格式：
//
//	12. 题干
//	A. 选项
//	...
//	Answer: C
//	Explanation: 解析，可跨多行
//	Exception: 特例说明，可跨多行
//
// 标签匹配区分大小写，冒号必须紧跟标签词。
const (
	answerTag      = "Answer:"
	explanationTag = "Explanation:"
	exceptionTag   = "Exception:"
)

var (
	questionLineRe = regexp.MustCompile(`^(\d+)\.\s+(.*\S)\s*$`)
	optionLineRe   = regexp.MustCompile(`^([A-D])\.\s+(.*\S)\s*$`)
)

// 文件头部的标题/横幅行，跳过且不影响解析状态
var headerPrefixes = []string{"JAMB ", "UTME ", "100Days"}

const bannerMarker = "===="

// Parse 将一份原始题目文本转换为记录序列。
// 永不报错：无法识别的行被跳过，残缺记录原样保留，由校验层决定去留。
func Parse(rawText, subjectLabel string) []model.QuestionRecord {
	var (
		records []model.QuestionRecord
		current *model.QuestionRecord

		collectingExplanation bool
		collectingException   bool
	)

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	for _, rawLine := range strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(rawLine)

		if line == "" || isHeaderLine(line) {
			continue
		}

		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			id, err := strconv.Atoi(m[1])
			if err == nil {
				flush()
				current = &model.QuestionRecord{
					ID:      id,
					Subject: subjectLabel,
					Text:    m[2],
					Options: map[model.ChoiceKey]string{},
				}
				collectingExplanation = false
				collectingException = false
				continue
			}
			// 数字溢出等极端情况：当普通行处理
		}

		if m := optionLineRe.FindStringSubmatch(line); m != nil {
			// 没有已开启的记录时，选项行是残料，丢弃
			if current != nil {
				current.Options[model.ChoiceKey(m[1])] = m[2]
			}
			collectingExplanation = false
			collectingException = false
			continue
		}

		if rest, ok := strings.CutPrefix(line, answerTag); ok {
			if current != nil {
				current.Answer = model.ChoiceKey(strings.TrimSpace(rest))
			}
			collectingExplanation = false
			collectingException = false
			continue
		}

		if rest, ok := strings.CutPrefix(line, explanationTag); ok {
			if current != nil {
				current.Explanation = strings.TrimSpace(rest)
			}
			collectingExplanation = true
			collectingException = false
			continue
		}

		if rest, ok := strings.CutPrefix(line, exceptionTag); ok {
			if current != nil {
				current.Exception = strings.TrimSpace(rest)
			}
			collectingException = true
			collectingExplanation = false
			continue
		}

		// 普通续行：只在正收集解析/特例文本时拼接
		if current != nil && collectingExplanation {
			current.Explanation = joinContinuation(current.Explanation, line)
		} else if current != nil && collectingException {
			current.Exception = joinContinuation(current.Exception, line)
		}
	}

	flush()
	return records
}

func isHeaderLine(line string) bool {
	if strings.Contains(line, bannerMarker) {
		return true
	}
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func joinContinuation(existing, line string) string {
	if existing == "" {
		return line
	}
	return existing + " " + line
}
