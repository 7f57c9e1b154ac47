package hash

import (
	"crypto/subtle"

	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	"golang.org/x/crypto/sha3"
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// Keccak256Length Keccak-256 摘要长度
const Keccak256Length = 32

// HashService 提供哈希计算功能
//
// 不做结果缓存：MAC 的输入包含派生密钥，缓存会让密钥材料常驻内存。
type HashService struct{}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{}
}

// Keccak256 计算Keccak-256哈希（原始 Keccak 填充，非 NIST SHA3-256）
//
// 多个参数按顺序拼接后计算，等价于 Keccak256(a‖b‖...)。
//
// 返回:
//   - []byte: 32字节的Keccak-256哈希结果
func (s *HashService) Keccak256(data ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// ConstantTimeCompare 以常量时间比较两个字节串
//
// 长度不同直接返回 false，长度本身不是秘密。
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
