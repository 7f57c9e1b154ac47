package keystore

import (
	"context"
	"fmt"
	"strings"

	corelog "github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/metrics"
	log "github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/log"
	"github.com/huang190105/wisdom-operations-master/pkg/interfaces/infrastructure/storage"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// keyPrefix 存储键前缀，完整键为 keystore/<address>
const keyPrefix = "keystore/"

// Repository 通过键值存储持久化 keystore 记录
type Repository struct {
	store   storage.KVStore
	logger  log.Logger
	metrics *metrics.KeystoreMetrics
}

// NewRepository 创建记录仓库
func NewRepository(store storage.KVStore, logger log.Logger, m *metrics.KeystoreMetrics) *Repository {
	return &Repository{
		store:   store,
		logger:  corelog.NewModuleLogger(logger, "keystore"),
		metrics: m,
	}
}

// StorageKey 返回地址对应的存储键
func StorageKey(address string) string {
	return keyPrefix + normalizeAddress(address)
}

func normalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	address = strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	return strings.ToLower(address)
}

// Save 保存记录，同一地址的旧记录被覆盖
//
// 只接受结构完整的记录，不会写入缺少 mac 或 address 的记录。
func (r *Repository) Save(ctx context.Context, ks *types.Keystore) (err error) {
	defer func() { r.metrics.ObserveOperation(metrics.OperationSave, resultLabel(err)) }()

	if _, err := Decode(ks); err != nil {
		return err
	}
	data, err := Marshal(ks)
	if err != nil {
		return err
	}

	if err := r.store.Put(ctx, StorageKey(ks.Address), data); err != nil {
		return fmt.Errorf("保存keystore失败: %w", err)
	}
	r.logger.Infof("keystore 已保存: address=%s", ks.Address)
	return nil
}

// Load 按地址读取记录，不存在时返回 ErrKeystoreNotFound
//
// 记录中的地址与请求地址不一致时返回 ErrMalformedRecord。
func (r *Repository) Load(ctx context.Context, address string) (ks *types.Keystore, err error) {
	defer func() { r.metrics.ObserveOperation(metrics.OperationLoad, resultLabel(err)) }()

	data, found, err := r.store.ReadLatestSnapshot(ctx, StorageKey(address))
	if err != nil {
		return nil, fmt.Errorf("读取keystore失败: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: address=%s", ErrKeystoreNotFound, address)
	}

	ks, err = Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if normalizeAddress(ks.Address) != normalizeAddress(address) {
		return nil, fmt.Errorf("%w: 存储键 %s 下的记录地址为 %s", ErrMalformedRecord, StorageKey(address), ks.Address)
	}
	return ks, nil
}
