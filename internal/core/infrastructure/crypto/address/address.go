package address

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/hash"
	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
)

const (
	// AddressLength 地址字节长度（keccak256 摘要的后20字节）
	AddressLength = 20
	// AddressHexLength 地址十六进制字符串长度
	AddressHexLength = AddressLength * 2
	// PublicKeyLength Ed25519 公钥长度
	PublicKeyLength = 32
)

var (
	// ErrInvalidPublicKey 无效的公钥
	ErrInvalidPublicKey = errors.New("invalid public key format")
	// ErrInvalidAddress 无效的地址格式
	ErrInvalidAddress = errors.New("invalid address format")
	// ErrInvalidAddressLength 无效的地址长度
	ErrInvalidAddressLength = errors.New("invalid address length")
)

// AddressService 账户地址服务
//
// 地址只依赖公钥：address = hex(keccak256(publicKey)[12:32])，
// 与口令和随机数无关，恢复后重新计算必须得到相同结果。
type AddressService struct {
	hashManager cryptointf.HashManager
}

// 确保AddressService实现了AddressManager接口
var _ cryptointf.AddressManager = (*AddressService)(nil)

// NewAddressService 创建新的地址服务实例
//
// 参数：
//   - hashManager: 哈希服务，为 nil 时使用默认的 Keccak 实现
func NewAddressService(hashManager cryptointf.HashManager) *AddressService {
	if hashManager == nil {
		hashManager = hash.NewHashService()
	}
	return &AddressService{hashManager: hashManager}
}

// PublicKeyToAddress 从公钥生成地址
func (s *AddressService) PublicKeyToAddress(publicKey []byte) (string, error) {
	if len(publicKey) != PublicKeyLength {
		return "", fmt.Errorf("%w: 期望%d字节，实际%d字节", ErrInvalidPublicKey, PublicKeyLength, len(publicKey))
	}
	digest := s.hashManager.Keccak256(publicKey)
	return hex.EncodeToString(digest[len(digest)-AddressLength:]), nil
}

// ValidateAddress 验证地址格式（40位小写十六进制）
func (s *AddressService) ValidateAddress(address string) error {
	if len(address) != AddressHexLength {
		return fmt.Errorf("%w: 期望%d个字符，实际%d个字符", ErrInvalidAddressLength, AddressHexLength, len(address))
	}
	for _, c := range address {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return fmt.Errorf("%w: 非法字符 %q", ErrInvalidAddress, c)
		}
	}
	return nil
}

// DecodeAddress 将地址解码为20字节
func (s *AddressService) DecodeAddress(address string) ([]byte, error) {
	if err := s.ValidateAddress(address); err != nil {
		return nil, err
	}
	return hex.DecodeString(address)
}
