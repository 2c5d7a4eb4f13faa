package service

import (
	"fmt"
	"sync"

	"utme_prep_backend/internal/model"

	"golang.org/x/sync/singleflight"
)

// SubjectCache 会话内的按科目结果缓存。
// 只缓存成功且非空的记录集；同一键的并发加载由 singleflight 合并成一次。
type SubjectCache struct {
	mu      sync.RWMutex
	entries map[string][]model.QuestionRecord
	group   singleflight.Group
}

func NewSubjectCache() *SubjectCache {
	return &SubjectCache{entries: map[string][]model.QuestionRecord{}}
}

func cacheKey(subject string, period model.Period) string {
	return fmt.Sprintf("%s@%d", subject, period)
}

// Get 返回缓存的记录集，未命中时 ok 为 false
func (c *SubjectCache) Get(subject string, period model.Period) ([]model.QuestionRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	records, ok := c.entries[cacheKey(subject, period)]
	return records, ok
}

// GetOrLoad 命中直接返回，否则执行 load 并缓存非空结果。
// 并发的同键调用只触发一次 load。
func (c *SubjectCache) GetOrLoad(subject string, period model.Period, load func() ([]model.QuestionRecord, error)) ([]model.QuestionRecord, error) {
	key := cacheKey(subject, period)

	if records, ok := c.Get(subject, period); ok {
		return records, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		if records, ok := c.Get(subject, period); ok {
			return records, nil
		}
		records, err := load()
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			c.mu.Lock()
			c.entries[key] = records
			c.mu.Unlock()
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.QuestionRecord), nil
}

// Reset 清空会话缓存
func (c *SubjectCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string][]model.QuestionRecord{}
}

// Len 当前缓存的科目集数量
func (c *SubjectCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
