// Package keystore 提供 keystore 的 Argon2id 成本参数配置
package keystore

import (
	configtypes "github.com/huang190105/wisdom-operations-master/pkg/types"
)

// KeystoreOptions keystore 配置选项
type KeystoreOptions struct {
	MemoryCost  uint32 `json:"memory_cost"` // Argon2id 内存成本（KiB）
	TimeCost    uint32 `json:"time_cost"`   // Argon2id 迭代次数
	Parallelism uint8  `json:"parallelism"` // Argon2id 并行度
}

// Config keystore 配置实现
type Config struct {
	options *KeystoreOptions
}

// New 创建 keystore 配置实现
func New(userConfig interface{}) *Config {
	options := DefaultOptions()
	if userConfig != nil {
		applyUserConfig(options, userConfig)
	}
	return &Config{options: options}
}

// DefaultOptions 返回内置的安全默认参数
func DefaultOptions() *KeystoreOptions {
	return &KeystoreOptions{
		MemoryCost:  DefaultMemoryCost,
		TimeCost:    DefaultTimeCost,
		Parallelism: DefaultParallelism,
	}
}

// applyUserConfig 应用用户配置，低于下限的值被忽略
func applyUserConfig(options *KeystoreOptions, userConfig interface{}) {
	cfg, ok := userConfig.(*configtypes.UserKeystoreConfig)
	if !ok || cfg == nil {
		return
	}
	if cfg.MemoryCost != nil && *cfg.MemoryCost >= MinMemoryCost && *cfg.MemoryCost <= MaxMemoryCost {
		options.MemoryCost = *cfg.MemoryCost
	}
	if cfg.TimeCost != nil && *cfg.TimeCost >= MinTimeCost && *cfg.TimeCost <= MaxTimeCost {
		options.TimeCost = *cfg.TimeCost
	}
	if cfg.Parallelism != nil && *cfg.Parallelism >= 1 && *cfg.Parallelism <= MaxParallelism {
		options.Parallelism = *cfg.Parallelism
	}
}

// GetOptions 获取完整配置
func (c *Config) GetOptions() *KeystoreOptions {
	return c.options
}
