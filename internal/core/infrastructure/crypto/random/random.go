// Package random 提供 keystore 使用的密码学安全随机源
//
// 默认随机源为 crypto/rand.Reader（由操作系统熵池支撑，可并发使用）。
// 读取失败视为环境无法提供安全随机数，返回 ErrEntropy。
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
)

// ErrEntropy 无法获取足够的安全随机数
var ErrEntropy = errors.New("secure randomness unavailable")

// Source 随机源，包装任意 io.Reader
type Source struct {
	reader io.Reader
}

// 确保Source实现了cryptointf.RandomSource接口
var _ cryptointf.RandomSource = (*Source)(nil)

// NewSource 创建随机源，reader 为 nil 时使用 crypto/rand.Reader
func NewSource(reader io.Reader) *Source {
	if reader == nil {
		reader = rand.Reader
	}
	return &Source{reader: reader}
}

// Default 返回基于 crypto/rand 的随机源
func Default() *Source {
	return NewSource(nil)
}

// Read 实现 io.Reader，保证读满 p，否则返回 ErrEntropy
func (s *Source) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.reader, p)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return n, nil
}

// Bytes 读取 n 个随机字节
func (s *Source) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := s.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
