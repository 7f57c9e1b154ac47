package keystore

import (
	"sync"

	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

var (
	defaultOnce    sync.Once
	defaultManager *Manager
	defaultErr     error
)

// getDefaultManager 默认管理器使用全局日志记录器
func getDefaultManager() (*Manager, error) {
	defaultOnce.Do(func() {
		defaultManager, defaultErr = NewManager(ManagerInput{Logger: corelog.GetLogger()})
	})
	return defaultManager, defaultErr
}

// CreateKeystore 使用默认参数和 crypto/rand 创建 keystore
func CreateKeystore(password string) (*types.Keystore, error) {
	m, err := getDefaultManager()
	if err != nil {
		return nil, err
	}
	return m.CreateKeystore(password)
}

// RecoverPrivateKey 使用默认实现恢复私钥种子
func RecoverPrivateKey(ks *types.Keystore, password string) ([]byte, error) {
	m, err := getDefaultManager()
	if err != nil {
		return nil, err
	}
	return m.RecoverPrivateKey(ks, password)
}
