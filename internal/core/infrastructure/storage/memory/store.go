// Package memory 提供进程内的键值存储实现，用于测试和临时模式
package memory

import (
	"context"
	"fmt"
	"sync"

	storage "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
)

// Store 基于 map 的内存存储
type Store struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

// 确保Store实现了storage.KVStore接口
var _ storage.KVStore = (*Store)(nil)

// New 创建内存存储
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Put 写入键值对（保存副本）
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("%w: 键不能为空", storage.ErrStorage)
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[key] = valueCopy
	return nil
}

// ReadLatestSnapshot 在读锁下读取，返回副本
func (s *Store) ReadLatestSnapshot(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, true, nil
}

// Len 返回记录数量
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
