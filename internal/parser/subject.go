package parser

import (
	"path/filepath"
	"strings"
)

// 文件名里的科目关键词（不区分大小写），顺序决定冲突时的优先级
var subjectKeywords = []struct {
	subject  string
	keywords []string
}{
	{"Physics", []string{"physics", "phy"}},
	{"Mathematics", []string{"mathematics", "math", "maths"}},
	{"English", []string{"english", "eng"}},
	{"Chemistry", []string{"chemistry", "chem"}},
	{"Biology", []string{"biology", "bio"}},
	{"Literature", []string{"literature", "lit"}},
	{"Government", []string{"government", "govt"}},
	{"Crs", []string{"crs", "christian", "religious"}},
	{"Accounting", []string{"accounting", "acct"}},
	{"Commerce", []string{"commerce", "comm"}},
	{"Economics", []string{"economics", "econ", "eco"}},
}

// DetectSubject 从文件名猜测科目，例如 "JAMB_Physics_Q1-35.txt" → "Physics"。
// 猜不出时返回 ""。
func DetectSubject(filename string) string {
	lower := strings.ToLower(filename)
	for _, entry := range subjectKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.subject
			}
		}
	}
	return ""
}

// FallbackSubject 关键词匹配失败时的兜底：用去掉扩展名的文件名做标签
func FallbackSubject(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.Title(strings.ToLower(stem))
}
