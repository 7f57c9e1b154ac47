package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ModuleParams 定义指标模块的依赖参数
type ModuleParams struct {
	fx.In

	Registerer prometheus.Registerer `optional:"true"` // 为空时使用默认注册表
}

// Module 返回指标模块
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(func(params ModuleParams) (*KeystoreMetrics, error) {
			reg := params.Registerer
			if reg == nil {
				reg = prometheus.DefaultRegisterer
			}
			return NewKeystoreMetrics(reg)
		}),
	)
}
