// Package config provides configuration provider interfaces.
package config

import (
	keystoreconfig "github.com/huang190105/wisdom-operations-master/internal/config/keystore"
	logconfig "github.com/huang190105/wisdom-operations-master/internal/config/log"
	badgerconfig "github.com/huang190105/wisdom-operations-master/internal/config/storage/badger"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// Provider 配置提供者接口
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetBadger 获取BadgerDB存储配置
	GetBadger() *badgerconfig.BadgerOptions

	// GetKeystore 获取keystore（KDF参数）配置
	GetKeystore() *keystoreconfig.KeystoreOptions

	// GetEnvironment 获取运行环境（dev | test | prod）
	GetEnvironment() string

	// GetAppConfig 获取原始应用配置
	GetAppConfig() *types.AppConfig
}
