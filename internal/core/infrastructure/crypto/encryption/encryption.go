// Package encryption 提供 keystore 私钥加密使用的对称密码
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
)

const (
	// CipherName 写入 keystore 记录的算法标识
	CipherName = "aes-256-ctr"
	// KeyLength AES-256 密钥长度
	KeyLength = 32
	// IVLength CTR 初始计数器长度
	IVLength = aes.BlockSize
)

// 错误定义
var (
	ErrInvalidKeyLength = errors.New("无效的密钥长度")
	ErrInvalidIVLength  = errors.New("无效的IV长度")
)

// AESCTR AES-256-CTR 流密码
//
// 密文长度等于明文长度，本身不提供完整性保护，
// 完整性由 keystore 的 MAC 负责。同一 (key, iv) 不得重复用于不同明文。
type AESCTR struct{}

// 确保AESCTR实现了cryptointf.SymmetricCipher接口
var _ cryptointf.SymmetricCipher = (*AESCTR)(nil)

// NewAESCTR 创建 AES-256-CTR 密码
func NewAESCTR() *AESCTR {
	return &AESCTR{}
}

// Name 返回算法标识
func (c *AESCTR) Name() string {
	return CipherName
}

// Encrypt 加密
func (c *AESCTR) Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	return c.xorKeyStream(key, iv, plaintext)
}

// Decrypt 解密（CTR 模式下与加密相同）
func (c *AESCTR) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	return c.xorKeyStream(key, iv, ciphertext)
}

func (c *AESCTR) xorKeyStream(key, iv, input []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidKeyLength, KeyLength, len(key))
	}
	if len(iv) != IVLength {
		return nil, fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidIVLength, IVLength, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("创建AES密码块失败: %w", err)
	}

	output := make([]byte, len(input))
	cipher.NewCTR(block, iv).XORKeyStream(output, input)
	return output, nil
}
