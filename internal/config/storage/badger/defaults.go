package badger

import (
	"github.com/huang190105/wisdom-operations-master/pkg/utils"
)

// getDefaultPath 获取默认数据库路径（使用路径解析工具）
func getDefaultPath() string {
	return utils.ResolveDataPath("./data/keystore")
}

const (
	// defaultSyncWrites 默认启用同步写入
	// keystore 记录丢失即私钥丢失，写入必须落盘
	defaultSyncWrites = true

	// DefaultMemTableSize 默认内存表大小为16MB
	// keystore 记录很小且每次调用都会重新打开数据库，不需要大内存表
	DefaultMemTableSize int64 = 16 << 20

	// MinMemTableSize 内存表下限，低于该值按默认值处理
	MinMemTableSize int64 = 1 << 20
)
