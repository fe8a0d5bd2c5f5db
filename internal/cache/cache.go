package cache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store 是一个带失效标签的进程内缓存。
// 每个条目记录 值 + 过期时间 + 标签集合，另维护 标签 -> 键集合 的反向索引，
// 按标签失效时直接定位要删除的键。
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	tagKeys map[string]map[string]struct{}
	gens    map[string]uint64
	group   singleflight.Group
	now     func() time.Time
}

type entry struct {
	value     any
	expiresAt time.Time
	tags      []string
}

// NewStore 构造一个空的缓存实例。
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		tagKeys: make(map[string]map[string]struct{}),
		gens:    make(map[string]uint64),
		now:     time.Now,
	}
}

// GetOrLoad 返回 key 下未过期的缓存值；未命中或已过期时执行 loader 并回填。
// 同一个 key 同时只会有一个 loader 在执行，并发的未命中读共享同一次结果。
// loader 返回错误时不缓存，错误原样返回给调用方。
//
// singleflight 的飞行键携带 key 的代数：失效会递增代数，
// 因此失效之后发起的读不会搭上失效之前已经起飞的 loader。
func (s *Store) GetOrLoad(key string, ttl time.Duration, tags []string, loader func() (any, error)) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && s.now().Before(e.expiresAt) {
		value := e.value
		s.mu.Unlock()
		return value, nil
	}
	gen := s.gens[key]
	// 起飞前先登记标签索引：尚无条目的键也要能被按标签失效拦下
	s.indexLocked(key, tags)
	s.mu.Unlock()

	value, err, _ := s.group.Do(flightKey(key, gen), func() (any, error) {
		loaded, err := loader()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.gens[key] == gen {
			s.setLocked(key, loaded, ttl, tags)
		}
		s.mu.Unlock()

		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Get 返回 key 下未过期的缓存值。
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set 直接写入一个缓存条目并登记其标签。
func (s *Store) Set(key string, value any, ttl time.Duration, tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, value, ttl, tags)
}

// Invalidate 删除给定标签下的全部缓存键。
// 返回时删除已对所有后续读可见，调用方在存储写成功后同步调用。
func (s *Store) Invalidate(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tag := range tags {
		keys, ok := s.tagKeys[tag]
		if !ok {
			continue
		}
		for key := range keys {
			if e, ok := s.entries[key]; ok {
				s.unindexLocked(key, e.tags)
				delete(s.entries, key)
			}
			// 正在加载中的键没有条目，但同样要翻代，阻止其回填
			s.gens[key]++
		}
		delete(s.tagKeys, tag)
	}
}

// Len 返回当前缓存条目数量，供测试与诊断使用。
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) setLocked(key string, value any, ttl time.Duration, tags []string) {
	if old, ok := s.entries[key]; ok {
		s.unindexLocked(key, old.tags)
	}

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
		tags:      tags,
	}
	s.indexLocked(key, tags)
}

func (s *Store) indexLocked(key string, tags []string) {
	for _, tag := range tags {
		keys, ok := s.tagKeys[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.tagKeys[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

func (s *Store) unindexLocked(key string, tags []string) {
	for _, tag := range tags {
		if keys, ok := s.tagKeys[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(s.tagKeys, tag)
			}
		}
	}
}

func flightKey(key string, gen uint64) string {
	return fmt.Sprintf("%s#%d", key, gen)
}
