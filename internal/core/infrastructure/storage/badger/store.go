// Package badger 提供基于BadgerDB的 keystore 记录存储
//
// 每次调用都会打开数据库、完成操作后立即关闭，调用之间不持有任何句柄。
// BadgerDB 的目录锁只允许一个进程内实例，因此同一个 Store 上的调用串行执行。
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v3"
	badgerconfig "github.com/huang190105/wisdom-operations-master/internal/config/storage/badger"
	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	interfaces "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
	"github.com/huang190105/wisdom-operations-master/pkg/utils"
)

// valueThreshold 小于该大小的值与键一起存入 LSM 树
// badger 要求它不超过 MemTableSize 的 15%，keystore 记录远小于 1KiB
const valueThreshold = 1 << 10

// Store 基于BadgerDB的键值存储
type Store struct {
	config *badgerconfig.Config
	logger log.Logger
	mu     sync.Mutex
}

// 确保Store实现了interfaces.KVStore接口
var _ interfaces.KVStore = (*Store)(nil)

// New 创建新的BadgerDB存储
//
// 构造时不打开数据库，首次读写时才会创建数据目录。
func New(config *badgerconfig.Config, logger log.Logger) *Store {
	if config == nil {
		config = badgerconfig.New(nil)
	}
	return &Store{
		config: config,
		logger: corelog.NewModuleLogger(logger, "storage"),
	}
}

// Path 返回数据目录
func (s *Store) Path() string {
	dataDir := s.config.GetPath()
	if dataDir == "" {
		dataDir = utils.ResolveDataPath("./data/keystore")
	}
	return dataDir
}

// open 打开数据库，调用方负责关闭
func (s *Store) open() (*badgerdb.DB, error) {
	dataDir := s.Path()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: 创建数据目录失败: %v", interfaces.ErrStorage, err)
	}

	opts := badgerdb.DefaultOptions(dataDir)
	opts.SyncWrites = s.config.IsSyncWritesEnabled()
	opts.MemTableSize = s.config.GetMemTableSize()
	opts.ValueThreshold = valueThreshold
	// keystore 记录很小，缩小 vlog 与缓存，避免每次打开都映射大文件
	opts.ValueLogFileSize = 16 << 20
	opts.BlockCacheSize = 8 << 20
	opts.IndexCacheSize = 0
	opts.NumCompactors = 2
	opts.Logger = newBadgerLogger(s.logger)

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: 打开BadgerDB失败: %v", interfaces.ErrStorage, err)
	}
	return db, nil
}

// withDB 在一次打开的数据库上执行 fn，结束后关闭
func (s *Store) withDB(ctx context.Context, fn func(db *badgerdb.DB) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			s.logger.Warnf("关闭BadgerDB失败: %v", closeErr)
			if err == nil {
				err = fmt.Errorf("%w: 关闭BadgerDB失败: %v", interfaces.ErrStorage, closeErr)
			}
		}
	}()

	return fn(db)
}

// Put 写入键值对
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: 键不能为空", interfaces.ErrStorage)
	}

	return s.withDB(ctx, func(db *badgerdb.DB) error {
		err := db.Update(func(txn *badgerdb.Txn) error {
			return txn.Set([]byte(key), value)
		})
		if err != nil {
			return fmt.Errorf("%w: 写入失败: %v", interfaces.ErrStorage, err)
		}
		s.logger.Debugf("写入记录: key=%s size=%d", key, len(value))
		return nil
	})
}

// ReadLatestSnapshot 在只读事务（一致性快照）中扫描记录并返回匹配值
func (s *Store) ReadLatestSnapshot(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value []byte
		found bool
	)

	err := s.withDB(ctx, func(db *badgerdb.DB) error {
		return db.View(func(txn *badgerdb.Txn) error {
			opts := badgerdb.DefaultIteratorOptions
			opts.PrefetchValues = false
			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Rewind(); it.Valid(); it.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				item := it.Item()
				if string(item.Key()) != key {
					continue
				}
				v, err := item.ValueCopy(nil)
				if err != nil {
					return fmt.Errorf("%w: 读取值失败: %v", interfaces.ErrStorage, err)
				}
				value, found = v, true
				return nil
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrStorage) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("%w: %v", interfaces.ErrStorage, err)
	}
	return value, found, nil
}

// badgerLogger 实现BadgerDB的日志接口
type badgerLogger struct {
	logger log.Logger
}

// newBadgerLogger 创建BadgerDB日志适配器
func newBadgerLogger(logger log.Logger) *badgerLogger {
	return &badgerLogger{logger: logger}
}

// Errorf 输出错误日志
func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf("[BadgerDB] "+format, args...)
}

// Warningf 输出警告日志
func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf("[BadgerDB] "+format, args...)
}

// Infof BadgerDB 的 Info 日志在每次打开时都会输出，降级为 Debug
func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf("[BadgerDB] "+format, args...)
}

// Debugf 输出调试日志
func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf("[BadgerDB] "+format, args...)
}
