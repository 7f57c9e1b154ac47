package keystore

import (
	"errors"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/random"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/metrics"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
)

// 错误定义
//
// 所有失败都以包装后的哨兵错误返回，调用方用 errors.Is 区分。
var (
	// ErrValidation 口令不满足长度要求，用户可以换一个口令重试
	ErrValidation = errors.New("password validation failed")

	// ErrEntropy 环境无法提供安全随机数
	ErrEntropy = random.ErrEntropy

	// ErrMalformedRecord 记录缺少字段、编码错误或长度不一致，记录不可用
	ErrMalformedRecord = errors.New("malformed keystore record")

	// ErrAuthentication MAC 不匹配：口令错误或记录被篡改
	ErrAuthentication = errors.New("keystore authentication failed")

	// ErrIntegrity 解密成功但地址重算不一致
	ErrIntegrity = errors.New("keystore integrity check failed")

	// ErrKeystoreNotFound 存储中没有该地址的记录
	ErrKeystoreNotFound = errors.New("keystore not found")
)

// resultLabel 将错误映射为指标结果标签
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrEntropy):
		return "entropy"
	case errors.Is(err, ErrMalformedRecord):
		return "malformed"
	case errors.Is(err, ErrAuthentication):
		return "authentication"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	case errors.Is(err, ErrKeystoreNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrStorage):
		return "storage"
	default:
		return "error"
	}
}
