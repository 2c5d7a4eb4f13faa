package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"utme_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheConcurrentSingleLoad(t *testing.T) {
	cache := NewSubjectCache()

	var loads int32
	load := func() ([]model.QuestionRecord, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(20 * time.Millisecond)
		return []model.QuestionRecord{fullRecord(1)}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := cache.GetOrLoad("physics", 3, load)
			assert.NoError(t, err)
			assert.Len(t, records, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestCacheHitSkipsLoad(t *testing.T) {
	cache := NewSubjectCache()

	var loads int
	load := func() ([]model.QuestionRecord, error) {
		loads++
		return []model.QuestionRecord{fullRecord(1)}, nil
	}

	_, err := cache.GetOrLoad("physics", 3, load)
	require.NoError(t, err)
	_, err = cache.GetOrLoad("physics", 3, load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheKeyIncludesPeriod(t *testing.T) {
	cache := NewSubjectCache()

	var loads int
	load := func() ([]model.QuestionRecord, error) {
		loads++
		return []model.QuestionRecord{fullRecord(loads)}, nil
	}

	_, _ = cache.GetOrLoad("physics", 3, load)
	_, _ = cache.GetOrLoad("physics", 2, load)

	assert.Equal(t, 2, loads)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheDoesNotStoreEmptyOrFailed(t *testing.T) {
	cache := NewSubjectCache()

	var loads int
	empty := func() ([]model.QuestionRecord, error) {
		loads++
		return nil, nil
	}
	failing := func() ([]model.QuestionRecord, error) {
		loads++
		return nil, errors.New("boom")
	}

	records, err := cache.GetOrLoad("physics", 3, empty)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = cache.GetOrLoad("chemistry", 3, failing)
	assert.Error(t, err)

	// 空结果和失败都不缓存，再来一次会重新加载
	_, _ = cache.GetOrLoad("physics", 3, empty)
	assert.Equal(t, 3, loads)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheReset(t *testing.T) {
	cache := NewSubjectCache()

	_, _ = cache.GetOrLoad("physics", 3, func() ([]model.QuestionRecord, error) {
		return []model.QuestionRecord{fullRecord(1)}, nil
	})
	require.Equal(t, 1, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("physics", 3)
	assert.False(t, ok)
}
