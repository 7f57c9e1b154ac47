// Package crypto 提供加密相关功能
package crypto

import (
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	config "github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	Provider config.Provider // 配置提供者
	Logger   log.Logger      `optional:"true"` // 日志记录器
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	RandomSource   crypto.RandomSource
	KeyManager     crypto.KeyManager
	KeyDerivation  crypto.KeyDerivation
	Cipher         crypto.SymmetricCipher
	HashManager    crypto.HashManager
	AddressManager crypto.AddressManager
	KDFParams      kdf.Params
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	out, err := CreateCryptoServices(ServiceInput{
		ConfigProvider: params.Provider,
		Logger:         params.Logger,
	})
	if err != nil {
		return CryptoOutput{}, err
	}

	return CryptoOutput{
		RandomSource:   out.RandomSource,
		KeyManager:     out.KeyManager,
		KeyDerivation:  out.KeyDerivation,
		Cipher:         out.Cipher,
		HashManager:    out.HashManager,
		AddressManager: out.AddressManager,
		KDFParams:      out.KDFParams,
	}, nil
}
