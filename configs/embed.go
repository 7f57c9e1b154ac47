package configs

import (
	_ "embed"
	"fmt"
	"strings"
)

// EmbeddedConfigs 嵌入的配置文件内容
type EmbeddedConfigs struct {
	Development []byte
	Testing     []byte
	Production  []byte
}

//go:embed development/config.json
var developmentConfig []byte

//go:embed testing/config.json
var testingConfig []byte

//go:embed production/config.json
var productionConfig []byte

// GetEmbeddedConfigs 获取所有嵌入的配置
func GetEmbeddedConfigs() *EmbeddedConfigs {
	return &EmbeddedConfigs{
		Development: developmentConfig,
		Testing:     testingConfig,
		Production:  productionConfig,
	}
}

// GetConfig 按环境名返回配置模板（dev | test | prod）
//
// 测试环境模板使用 Argon2id 的最低成本，只适合测试。
func GetConfig(env string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development":
		return developmentConfig, nil
	case "test", "testing":
		return testingConfig, nil
	case "prod", "production":
		return productionConfig, nil
	default:
		return nil, fmt.Errorf("未知环境: %q (支持 dev|test|prod)", env)
	}
}
