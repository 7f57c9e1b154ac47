// Package crypto 提供加密服务工厂实现
package crypto

import (
	"io"

	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/address"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/encryption"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/hash"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/key"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/random"
	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	config "github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
)

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	ConfigProvider config.Provider // 可为nil，此时使用默认KDF参数
	Logger         log.Logger
	Random         io.Reader // 可为nil，此时使用crypto/rand
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	RandomSource   crypto.RandomSource
	KeyManager     crypto.KeyManager
	KeyDerivation  crypto.KeyDerivation
	Cipher         crypto.SymmetricCipher
	HashManager    crypto.HashManager
	AddressManager crypto.AddressManager
	KDFParams      kdf.Params
}

// CreateCryptoServices 创建加密服务
//
// 所有原语共享同一个随机源，保证并发创建时盐值和IV来自同一个线程安全的熵源。
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	logger := corelog.NewModuleLogger(input.Logger, "crypto")

	source := random.NewSource(input.Random)
	hashService := hash.NewHashService()

	params := kdf.DefaultParams()
	if input.ConfigProvider != nil {
		params = kdf.ParamsFromOptions(input.ConfigProvider.GetKeystore())
	}
	if err := params.Validate(); err != nil {
		return ServiceOutput{}, err
	}
	logger.Infof("加密服务已初始化: kdf=%s cipher=%s memoryCost=%d timeCost=%d parallelism=%d",
		kdf.Name, encryption.CipherName, params.MemoryCost, params.TimeCost, params.Parallelism)

	return ServiceOutput{
		RandomSource:   source,
		KeyManager:     key.NewKeyManager(source),
		KeyDerivation:  kdf.NewArgon2id(),
		Cipher:         encryption.NewAESCTR(),
		HashManager:    hashService,
		AddressManager: address.NewAddressService(hashService),
		KDFParams:      params,
	}, nil
}
