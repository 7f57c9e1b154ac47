package keystore

import (
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/kdf"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/metrics"
	cryptointf "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/crypto"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
	"go.uber.org/fx"
)

// ModuleParams 定义 keystore 模块的依赖参数
type ModuleParams struct {
	fx.In

	Random         cryptointf.RandomSource
	KeyManager     cryptointf.KeyManager
	KeyDerivation  cryptointf.KeyDerivation
	Cipher         cryptointf.SymmetricCipher
	HashManager    cryptointf.HashManager
	AddressManager cryptointf.AddressManager
	KDFParams      kdf.Params
	KVStore        storage.KVStore
	Logger         log.Logger               `optional:"true"`
	Metrics        *metrics.KeystoreMetrics `optional:"true"`
}

// ModuleOutput 定义 keystore 模块的输出结构
type ModuleOutput struct {
	fx.Out

	Manager    *Manager
	Repository *Repository
}

// Module 返回 keystore 模块
func Module() fx.Option {
	return fx.Module("keystore",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供 keystore 服务
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	manager, err := NewManager(ManagerInput{
		Random:         params.Random,
		KeyManager:     params.KeyManager,
		KeyDerivation:  params.KeyDerivation,
		Cipher:         params.Cipher,
		HashManager:    params.HashManager,
		AddressManager: params.AddressManager,
		Params:         params.KDFParams,
		Logger:         params.Logger,
		Metrics:        params.Metrics,
	})
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Manager:    manager,
		Repository: NewRepository(params.KVStore, params.Logger, params.Metrics),
	}, nil
}
