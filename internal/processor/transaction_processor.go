package processor

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"banking_ledger/internal/service"
	"banking_ledger/pkg/metrics"
	"context"
	"io"
	"log/slog"
	"time"
)

// TransactionProcessor applies operations to stored accounts and reports each
// outcome on the console as a success flag plus a message.
type TransactionProcessor struct {
	accountRepo repository.AccountRepository
	notifier    *service.NotificationService
	metrics     *metrics.MetricsCollector
	logger      *slog.Logger
}

func NewTransactionProcessor(
	accountRepo repository.AccountRepository,
	notifier *service.NotificationService,
	metricsCollector *metrics.MetricsCollector,
	logger *slog.Logger,
) *TransactionProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = service.NewNotificationService(io.Discard, logger)
	}
	if metricsCollector == nil {
		metricsCollector = metrics.NewMetricsCollector(logger)
	}

	return &TransactionProcessor{
		accountRepo: accountRepo,
		notifier:    notifier,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Process applies op to the account with the given number. A rejected
// operation changes nothing and returns false.
func (p *TransactionProcessor) Process(ctx context.Context, accountNumber string, op domain.Operation) bool {
	account, err := p.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		p.reject(ctx, accountNumber, op, err)
		return false
	}

	start := time.Now()
	if err := op.Apply(account); err != nil {
		p.reject(ctx, accountNumber, op, err)
		return false
	}

	p.notifier.NotifyOperation(ctx, op.Type(), nil)
	p.metrics.RecordOperation(string(op.Type()), op.Amount().InexactFloat64(), true)
	p.metrics.UpdateAccountBalance(account.Number(), account.Balance().InexactFloat64())

	p.logger.InfoContext(ctx, "Operation completed",
		slog.String("account", account.Number()),
		slog.String("type", string(op.Type())),
		slog.String("amount", op.Amount().StringFixed(2)),
		slog.String("balance", account.Balance().StringFixed(2)),
		slog.Duration("duration", time.Since(start)))
	return true
}

// ProcessAll applies ops in order and returns how many succeeded. A failure
// does not stop the remaining operations.
func (p *TransactionProcessor) ProcessAll(ctx context.Context, accountNumber string, ops []domain.Operation) int {
	succeeded := 0
	for _, op := range ops {
		if p.Process(ctx, accountNumber, op) {
			succeeded++
		}
	}
	return succeeded
}

func (p *TransactionProcessor) reject(ctx context.Context, accountNumber string, op domain.Operation, err error) {
	p.notifier.NotifyOperation(ctx, op.Type(), err)
	p.metrics.RecordOperation(string(op.Type()), op.Amount().InexactFloat64(), false)

	p.logger.InfoContext(ctx, "Operation rejected",
		slog.String("account", accountNumber),
		slog.String("type", string(op.Type())),
		slog.String("amount", op.Amount().StringFixed(2)),
		slog.String("reason", err.Error()))
}
