package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径（为空时读取 WISDOM_CONFIG）
	configFilePath string

	// 用户配置（优先级高于configFilePath）
	appConfig *types.AppConfig

	// 使用内存存储
	inMemory bool

	// 指标注册表
	registerer prometheus.Registerer
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithAppConfig 直接使用给定配置，不再读取文件
func WithAppConfig(appConfig *types.AppConfig) Option {
	return func(o *options) {
		o.appConfig = appConfig
	}
}

// WithInMemoryStorage 使用内存存储，记录不落盘
func WithInMemoryStorage() Option {
	return func(o *options) {
		o.inMemory = true
	}
}

// WithRegisterer 设置指标注册表（默认使用 prometheus 默认注册表）
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// GetAppConfig 实现config.AppOptions接口
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
