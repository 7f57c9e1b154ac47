// Package key 提供 Ed25519 密钥对生成与敏感内存擦除
package key

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/random"
	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	ErrInvalidPrivateKey = errors.New("无效的私钥")
	ErrInvalidPublicKey  = errors.New("无效的公钥")
)

const (
	// PrivateKeySize 私钥种子长度（被加密保存的部分）
	PrivateKeySize = ed25519.SeedSize
	// PublicKeySize 公钥长度
	PublicKeySize = ed25519.PublicKeySize
)

// KeyManager Ed25519 密钥管理器
type KeyManager struct {
	random io.Reader
}

// 确保KeyManager实现了cryptointf.KeyManager接口
var _ cryptointf.KeyManager = (*KeyManager)(nil)

// NewKeyManager 创建密钥管理器，source 为 nil 时使用 crypto/rand
func NewKeyManager(source io.Reader) *KeyManager {
	if source == nil {
		source = random.Default()
	} else if _, ok := source.(*random.Source); !ok {
		source = random.NewSource(source)
	}
	return &KeyManager{random: source}
}

// GenerateKeyPair 生成新的密钥对
//
// 返回：
//   - publicKey: 32字节公钥
//   - privateKey: 32字节私钥种子，调用方负责用 SecureWipe 擦除
//   - error: 随机源失败时返回包装了 random.ErrEntropy 的错误
func (km *KeyManager) GenerateKeyPair() ([]byte, []byte, error) {
	seed := make([]byte, PrivateKeySize)
	if _, err := io.ReadFull(km.random, seed); err != nil {
		if errors.Is(err, random.ErrEntropy) {
			return nil, nil, fmt.Errorf("生成密钥对失败: %w", err)
		}
		return nil, nil, fmt.Errorf("生成密钥对失败: %w: %v", random.ErrEntropy, err)
	}

	publicKey, err := km.DerivePublicKey(seed)
	if err != nil {
		SecureWipe(seed)
		return nil, nil, err
	}
	return publicKey, seed, nil
}

// DerivePublicKey 从私钥种子推导公钥
func (km *KeyManager) DerivePublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidPrivateKey, PrivateKeySize, len(privateKey))
	}
	fullKey := ed25519.NewKeyFromSeed(privateKey)
	defer SecureWipe(fullKey)

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, fullKey[PrivateKeySize:])
	return publicKey, nil
}

// ValidatePublicKey 验证公钥长度
func (km *KeyManager) ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != PublicKeySize {
		return fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidPublicKey, PublicKeySize, len(publicKey))
	}
	return nil
}

// SecureWipe 安全擦除敏感数据
//
// 清除策略：先用0xFF覆盖，再用0x00覆盖（最终状态）。
func SecureWipe(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0xFF
	}
	for i := range data {
		data[i] = 0x00
	}
}
