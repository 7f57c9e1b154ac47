package types

// AppConfig 应用程序配置结构体
// 只包含用户在 JSON 配置文件中实际出现的字段，未设置的字段为 nil，由各配置模块应用默认值
type AppConfig struct {
	// Environment 运行环境：dev | test | prod
	Environment *string `json:"environment,omitempty"`

	// 存储配置
	Storage *UserStorageConfig `json:"storage,omitempty"`

	// 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// Keystore 配置（KDF 参数）
	Keystore *UserKeystoreConfig `json:"keystore,omitempty"`
}

// UserStorageConfig 用户存储配置
type UserStorageConfig struct {
	DataRoot *string `json:"data_root,omitempty"` // 数据根目录（data_root）
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserKeystoreConfig 用户 keystore 配置
//
// 仅用于部署时调整 Argon2id 成本参数，调用 CreateKeystore 时不能再修改。
type UserKeystoreConfig struct {
	MemoryCost  *uint32 `json:"memory_cost,omitempty"` // KiB
	TimeCost    *uint32 `json:"time_cost,omitempty"`
	Parallelism *uint8  `json:"parallelism,omitempty"`
}

// StringPtr 创建字符串指针，用于明确表示用户设置了该值
func StringPtr(v string) *string {
	return &v
}

// UInt32Ptr 创建uint32指针
func UInt32Ptr(v uint32) *uint32 {
	return &v
}

// UInt8Ptr 创建uint8指针
func UInt8Ptr(v uint8) *uint8 {
	return &v
}
