// Package kdf 提供基于 Argon2id 的口令密钥派生
package kdf

import (
	"errors"
	"fmt"

	keystoreconfig "github.com/huang190105/wisdom-operations-master/internal/config/keystore"
	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	"golang.org/x/crypto/argon2"
)

const (
	// Name 算法标识
	Name = "argon2id"
	// KeyLength 派生密钥长度，对应 AES-256
	KeyLength = 32
	// SaltLength 盐值长度
	SaltLength = 32
)

// 错误定义
var (
	ErrInvalidSalt   = errors.New("无效的盐值长度")
	ErrInvalidParams = errors.New("无效的KDF参数")
)

// Params Argon2id 成本参数
type Params struct {
	MemoryCost  uint32 // KiB
	TimeCost    uint32
	Parallelism uint8
}

// DefaultParams 返回内置默认参数
func DefaultParams() Params {
	return Params{
		MemoryCost:  keystoreconfig.DefaultMemoryCost,
		TimeCost:    keystoreconfig.DefaultTimeCost,
		Parallelism: keystoreconfig.DefaultParallelism,
	}
}

// ParamsFromOptions 从配置选项构造参数
func ParamsFromOptions(opts *keystoreconfig.KeystoreOptions) Params {
	if opts == nil {
		return DefaultParams()
	}
	return Params{
		MemoryCost:  opts.MemoryCost,
		TimeCost:    opts.TimeCost,
		Parallelism: opts.Parallelism,
	}
}

// Validate 检查参数是否在允许范围内
func (p Params) Validate() error {
	if p.MemoryCost < keystoreconfig.MinMemoryCost || p.MemoryCost > keystoreconfig.MaxMemoryCost {
		return fmt.Errorf("%w: memoryCost=%d", ErrInvalidParams, p.MemoryCost)
	}
	if p.TimeCost < keystoreconfig.MinTimeCost || p.TimeCost > keystoreconfig.MaxTimeCost {
		return fmt.Errorf("%w: timeCost=%d", ErrInvalidParams, p.TimeCost)
	}
	if p.Parallelism < 1 || p.Parallelism > keystoreconfig.MaxParallelism {
		return fmt.Errorf("%w: parallelism=%d", ErrInvalidParams, p.Parallelism)
	}
	// argon2 要求内存至少为 8*parallelism KiB
	if p.MemoryCost < 8*uint32(p.Parallelism) {
		return fmt.Errorf("%w: memoryCost 小于 8*parallelism", ErrInvalidParams)
	}
	return nil
}

// Argon2id 密钥派生实现
type Argon2id struct{}

// 确保Argon2id实现了cryptointf.KeyDerivation接口
var _ cryptointf.KeyDerivation = (*Argon2id)(nil)

// NewArgon2id 创建 Argon2id 派生器
func NewArgon2id() *Argon2id {
	return &Argon2id{}
}

// Name 返回算法标识
func (a *Argon2id) Name() string {
	return Name
}

// DeriveKey 派生 32 字节密钥
//
// 相同 (password, salt, 参数) 始终得到相同结果，恢复流程依赖这一点。
// 返回的密钥由调用方负责擦除。
func (a *Argon2id) DeriveKey(password, salt []byte, memoryCost, timeCost uint32, parallelism uint8) ([]byte, error) {
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidSalt, SaltLength, len(salt))
	}
	params := Params{MemoryCost: memoryCost, TimeCost: timeCost, Parallelism: parallelism}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return argon2.IDKey(password, salt, timeCost, memoryCost, parallelism, KeyLength), nil
}

// Derive 使用 Params 派生密钥
func (a *Argon2id) Derive(password, salt []byte, params Params) ([]byte, error) {
	return a.DeriveKey(password, salt, params.MemoryCost, params.TimeCost, params.Parallelism)
}
