// Package cli implements the ledger command line: a fixed demonstration
// scenario and an ad-hoc run of operations against a fresh account.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"banking_ledger/internal/config"
	"banking_ledger/internal/domain"
	"banking_ledger/internal/logger"
	"banking_ledger/internal/processor"
	"banking_ledger/internal/report"
	"banking_ledger/internal/repository/memory"
	"banking_ledger/internal/service"
	"banking_ledger/pkg/audit"
	"banking_ledger/pkg/metrics"
	"banking_ledger/pkg/money"

	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "ledger")
	c.Register(&applyCmd{}, "ledger")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global flag.
var configName = flag.String("config", "ledger", "Name of the .env configuration file, looked up in ./configs and .")

// app wires one in-memory ledger for the duration of a command.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *metrics.MetricsCollector
	bank      *service.BankService
	processor *processor.TransactionProcessor
	report    *report.Writer
	opts      []domain.Option
}

func newApp(cfg *config.Config, out, logOut io.Writer) *app {
	log := logger.NewLogger(cfg, logOut)
	if cfg.ConfigFile != "" {
		log.Info("Config loaded from file", slog.String("file", cfg.ConfigFile))
	}

	var opts []domain.Option
	if cfg.Audit.Enabled {
		opts = append(opts, domain.WithAudit(audit.New(out, audit.WithLogger(log))))
	}

	metricsCollector := metrics.NewMetricsCollector(log)
	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()
	notifier := service.NewNotificationService(out, log)
	formatter := money.NewFormatter(cfg.Currency.Symbol, cfg.Currency.DecimalSeparator, cfg.Currency.ThousandSeparator)

	return &app{
		cfg:       cfg,
		logger:    log,
		metrics:   metricsCollector,
		bank:      service.NewBankService(clientRepo, accountRepo, cfg.CheckingLimits(), metricsCollector, log, opts...),
		processor: processor.NewTransactionProcessor(accountRepo, notifier, metricsCollector, log),
		report:    report.NewWriter(out, formatter),
		opts:      opts,
	}
}

func loadApp(out, logOut io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(*configName)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, out, logOut), nil
}

type session struct {
	client   service.ClientInfo
	ops      []string
	filter   string
	filtered string // title of the filtered report
}

// run registers the client, opens a checking account, applies every operation
// and prints the statement, the filtered history and the account listing.
// Operations and the filter are parsed up front; a malformed one aborts the
// run before anything is applied.
func (a *app) run(ctx context.Context, s session) error {
	ops := make([]domain.Operation, 0, len(s.ops))
	for _, raw := range s.ops {
		op, err := domain.ParseOperation(raw, a.opts...)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	if s.filter != "" {
		if _, err := domain.ParseTransactionType(s.filter); err != nil {
			return err
		}
	}

	client, err := a.bank.RegisterClient(ctx, s.client)
	if err != nil {
		return err
	}

	account, err := a.bank.OpenCheckingAccount(ctx, client.NationalID)
	if err != nil {
		return err
	}

	a.processor.ProcessAll(ctx, account.Number(), ops)

	if err := a.report.Statement(account); err != nil {
		return err
	}

	if s.filter != "" {
		if err := a.report.History(s.filtered, account.History().Report(s.filter)); err != nil {
			return err
		}
	}

	accounts, err := a.bank.Accounts(ctx, client.NationalID)
	if err != nil {
		return err
	}
	return a.report.Accounts(accounts)
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func stderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

func fail(w io.Writer, err error) subcommands.ExitStatus {
	fmt.Fprintf(w, "Error: %v\n", err)
	return subcommands.ExitFailure
}
