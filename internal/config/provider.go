package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/huang190105/wisdom-operations-master/internal/config/keystore"
	"github.com/huang190105/wisdom-operations-master/internal/config/log"
	"github.com/huang190105/wisdom-operations-master/internal/config/storage/badger"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// ConfigPathEnv 指定配置文件路径的环境变量
const ConfigPathEnv = "WISDOM_CONFIG"

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	// 直接传递用户日志配置给log.New，让它处理默认值和转换
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil && p.appConfig.Log != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetBadger 获取BadgerDB存储配置
func (p *Provider) GetBadger() *badger.BadgerOptions {
	var userStorageConfig *types.UserStorageConfig
	if p.appConfig != nil && p.appConfig.Storage != nil {
		userStorageConfig = p.appConfig.Storage
	}
	return badger.New(userStorageConfig).GetOptions()
}

// GetKeystore 获取keystore配置
func (p *Provider) GetKeystore() *keystore.KeystoreOptions {
	var userKeystoreConfig *types.UserKeystoreConfig
	if p.appConfig != nil && p.appConfig.Keystore != nil {
		userKeystoreConfig = p.appConfig.Keystore
	}
	return keystore.New(userKeystoreConfig).GetOptions()
}

// GetEnvironment 获取运行环境
// 未配置或配置无效时返回 prod（安全优先）
func (p *Provider) GetEnvironment() string {
	if p.appConfig == nil || p.appConfig.Environment == nil {
		return "prod"
	}
	switch env := strings.ToLower(strings.TrimSpace(*p.appConfig.Environment)); env {
	case "dev", "test", "prod":
		return env
	default:
		return "prod"
	}
}

// GetAppConfig 获取原始应用配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}

// LoadAppConfig 从JSON文件加载应用配置
//
// path 为空时依次尝试环境变量 WISDOM_CONFIG；都没有时返回空配置（全部使用默认值）。
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path == "" {
		return &types.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	return &appConfig, nil
}
