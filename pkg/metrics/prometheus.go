package metrics

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type MetricsCollector struct {
	registry          *prometheus.Registry
	operations        *prometheus.CounterVec
	operationAmount   *prometheus.HistogramVec
	accountsOpened    prometheus.Counter
	clientsRegistered prometheus.Counter
	accountBalance    *prometheus.GaugeVec
	mu                sync.RWMutex
	logger            *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	collector := &MetricsCollector{
		registry: registry,
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of applied operations by type and outcome",
		}, []string{"type", "outcome"}),
		operationAmount: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_operation_amount",
			Help:    "Amounts of successful operations",
			Buckets: []float64{10, 50, 100, 200, 500, 1000, 5000},
		}, []string{"type"}),
		accountsOpened: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_opened_total",
			Help: "Total number of opened accounts",
		}),
		clientsRegistered: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_clients_registered_total",
			Help: "Total number of registered clients",
		}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "ledger_account_balance",
			Help: "Current account balance",
		}, []string{"account"}),
		logger: logger,
	}

	return collector
}

func (m *MetricsCollector) RecordOperation(opType string, amount float64, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if success {
		m.operations.WithLabelValues(opType, OutcomeSuccess).Inc()
		m.operationAmount.WithLabelValues(opType).Observe(amount)
		return
	}
	m.operations.WithLabelValues(opType, OutcomeFailure).Inc()
}

func (m *MetricsCollector) RecordAccountOpened() {
	m.accountsOpened.Inc()
}

func (m *MetricsCollector) RecordClientRegistered() {
	m.clientsRegistered.Inc()
}

func (m *MetricsCollector) UpdateAccountBalance(account string, balance float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountBalance.WithLabelValues(account).Set(balance)
}

// WriteText dumps every collected metric in the Prometheus text format.
func (m *MetricsCollector) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			m.logger.Error("Failed to write metric family",
				slog.String("name", mf.GetName()),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
