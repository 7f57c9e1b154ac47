// Package storage 提供存储管理功能
package storage

import (
	badgerconfig "github.com/huang190105/wisdom-operations-master/internal/config/storage/badger"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/storage/badger"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/storage/memory"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/config"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
	"go.uber.org/fx"
)

// ModuleParams 定义存储模块的依赖参数
type ModuleParams struct {
	fx.In

	Provider config.Provider // 配置提供者
	Logger   log.Logger      `optional:"true"` // 日志记录器
	InMemory bool            `name:"storage_in_memory" optional:"true"` // 使用内存存储（不落盘）
}

// ModuleOutput 定义存储模块的输出结构
type ModuleOutput struct {
	fx.Out

	KVStore storageInterface.KVStore
}

// Module 返回存储模块
func Module() fx.Option {
	return fx.Module("storage",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 根据配置选择存储实现
//
// 数据库句柄在每次调用内获取和释放，不需要生命周期钩子。
func ProvideServices(params ModuleParams) ModuleOutput {
	if params.InMemory {
		if params.Logger != nil {
			params.Logger.Warn("使用内存存储，keystore 记录不会持久化")
		}
		return ModuleOutput{KVStore: memory.New()}
	}

	store := badger.New(badgerconfig.NewFromOptions(params.Provider.GetBadger()), params.Logger)
	if params.Logger != nil {
		params.Logger.Infof("keystore 存储目录: %s", store.Path())
	}
	return ModuleOutput{KVStore: store}
}
