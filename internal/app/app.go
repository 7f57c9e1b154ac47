// Package app 组装 keystore 应用的依赖注入容器
package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	appconfig "github.com/huang190105/wisdom-operations-master/internal/config"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto"
	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/metrics"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/storage"
	"github.com/huang190105/wisdom-operations-master/internal/core/keystore"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
)

// App 已装配的 keystore 服务
type App struct {
	Manager    *keystore.Manager
	Repository *keystore.Repository
	Logger     log.Logger
	Provider   config.Provider
}

// New 加载配置并装配全部模块
//
// 所有组件都是无状态的，存储句柄按调用获取，因此无需启动或停止 fx 生命周期。
func New(opts ...Option) (*App, error) {
	o := newOptions(opts...)
	if o.appConfig == nil {
		appConfig, err := appconfig.LoadAppConfig(o.configFilePath)
		if err != nil {
			return nil, err
		}
		o.appConfig = appConfig
	}

	a := &App{}
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() config.AppOptions { return o }),
		fx.Provide(fx.Annotated{
			Name:   "storage_in_memory",
			Target: func() bool { return o.inMemory },
		}),
		provideRegisterer(o.registerer),

		appconfig.Module(),
		corelog.Module(),
		metrics.Module(),
		crypto.Module(),
		storage.Module(),
		keystore.Module(),

		fx.Populate(&a.Manager, &a.Repository, &a.Logger, &a.Provider),
	)
	if err := fxApp.Err(); err != nil {
		return nil, fmt.Errorf("装配应用失败: %w", err)
	}
	return a, nil
}

func provideRegisterer(reg prometheus.Registerer) fx.Option {
	if reg == nil {
		return fx.Options()
	}
	return fx.Provide(func() prometheus.Registerer { return reg })
}
