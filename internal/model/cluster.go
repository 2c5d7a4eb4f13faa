package model

import "strings"

// ClusterDefinition 一个组合考（cluster）需要的科目集合，顺序即合并顺序。
// 进程启动时从配置加载，整个生命周期内不变。
type ClusterDefinition struct {
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

// PageContext 描述一次解析请求来自哪个页面。
// 取代原实现里从全局 URL 嗅探科目集合的做法：由调用方显式传入。
type PageContext struct {
	// PageID 页面标识，例如 "quiz-science-cluster-a" 或 "quiz-physics"
	PageID string
	// Subject 页面元数据里的单科目（可选）
	Subject string
	// SubjectList 页面元数据里的逗号分隔科目列表（可选）
	SubjectList string
}

// MatchCluster returns the first cluster whose name appears as a substring of
// the page identifier. Definitions are checked in the given order.
func MatchCluster(pageID string, clusters []ClusterDefinition) (ClusterDefinition, bool) {
	id := strings.ToLower(pageID)
	for _, c := range clusters {
		if c.Name != "" && strings.Contains(id, strings.ToLower(c.Name)) {
			return c, true
		}
	}
	return ClusterDefinition{}, false
}

// SplitSubjectList 拆分逗号分隔的科目列表，去掉空白项。
func SplitSubjectList(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
