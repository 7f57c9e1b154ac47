package keystore

// Argon2id 默认参数与 wisdom 链 keystore 文件保持一致
const (
	// DefaultMemoryCost 默认内存成本 20MiB
	DefaultMemoryCost uint32 = 20480

	// DefaultTimeCost 默认迭代次数
	DefaultTimeCost uint32 = 4

	// DefaultParallelism 默认并行度
	DefaultParallelism uint8 = 2
)

// 参数上下限
//
// 恢复时 kdfparams 来自外部文件，超过上限的参数会被视为畸形记录，
// 这样单次恢复的耗时和内存有确定的上界。
const (
	MinMemoryCost  uint32 = 8 * 1024
	MaxMemoryCost  uint32 = 1024 * 1024 // 1GiB
	MinTimeCost    uint32 = 1
	MaxTimeCost    uint32 = 64
	MaxParallelism uint8  = 64
)
