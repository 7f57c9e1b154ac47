// Package storage 定义 keystore 记录持久化所需的键值存储接口
//
// 实现方每次调用自行获取并释放底层数据库句柄，调用方不能假设连接复用。
package storage

import (
	"context"
	"errors"
)

// ErrStorage 存储层 I/O 失败
var ErrStorage = errors.New("storage failure")

// KVStore 键值存储接口
type KVStore interface {
	// Put 写入键值对，已存在时覆盖
	// I/O 失败时返回包装了 ErrStorage 的错误
	Put(ctx context.Context, key string, value []byte) error

	// ReadLatestSnapshot 在一致性快照上扫描全部记录，返回与 key 匹配的值
	//
	// 返回：
	//   - []byte: 匹配的值（调用方持有的副本）
	//   - bool: 是否找到
	//   - error: I/O 失败时返回包装了 ErrStorage 的错误
	ReadLatestSnapshot(ctx context.Context, key string) ([]byte, bool, error)
}
