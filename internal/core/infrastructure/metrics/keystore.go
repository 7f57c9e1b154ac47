// Package metrics 提供 keystore 操作的 Prometheus 指标
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 操作名称
const (
	OperationCreate         = "create"
	OperationRecover        = "recover"
	OperationChangePassword = "change_password"
	OperationSave           = "save"
	OperationLoad           = "load"
)

// ResultOK 成功结果标签
const ResultOK = "ok"

// KeystoreMetrics keystore 指标集合
//
// 指标只记录操作类型、结果分类和耗时，不包含地址等任何账户信息。
type KeystoreMetrics struct {
	operations  *prometheus.CounterVec
	kdfDuration prometheus.Histogram
}

// NewKeystoreMetrics 创建指标并注册到 reg
//
// reg 为 nil 时指标不注册，仍可正常调用。重复注册时复用已注册的采集器。
func NewKeystoreMetrics(reg prometheus.Registerer) (*KeystoreMetrics, error) {
	m := &KeystoreMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wisdom",
			Subsystem: "keystore",
			Name:      "operations_total",
			Help:      "Keystore operations partitioned by operation and result.",
		}, []string{"operation", "result"}),
		kdfDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wisdom",
			Subsystem: "keystore",
			Name:      "kdf_duration_seconds",
			Help:      "Wall-clock time spent in Argon2id key derivation.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	if reg == nil {
		return m, nil
	}

	if err := reg.Register(m.operations); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.operations = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.kdfDuration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.kdfDuration = are.ExistingCollector.(prometheus.Histogram)
	}
	return m, nil
}

// ObserveOperation 记录一次操作结果
func (m *KeystoreMetrics) ObserveOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// ObserveKDF 记录一次密钥派生耗时
func (m *KeystoreMetrics) ObserveKDF(d time.Duration) {
	if m == nil {
		return
	}
	m.kdfDuration.Observe(d.Seconds())
}
