package service

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"banking_ledger/pkg/metrics"
	"banking_ledger/pkg/validator"
	"context"
	"fmt"
	"iter"
	"log/slog"
)

type ClientInfo struct {
	Name       string
	NationalID string
	BirthDate  string
	Address    string
}

// BankService registers clients and opens their accounts.
type BankService struct {
	clientRepo  repository.ClientRepository
	accountRepo repository.AccountRepository
	validator   *validator.ClientValidator
	limits      domain.CheckingLimits
	metrics     *metrics.MetricsCollector
	opts        []domain.Option
	logger      *slog.Logger
}

func NewBankService(
	clientRepo repository.ClientRepository,
	accountRepo repository.AccountRepository,
	limits domain.CheckingLimits,
	metricsCollector *metrics.MetricsCollector,
	logger *slog.Logger,
	opts ...domain.Option,
) *BankService {
	if logger == nil {
		logger = slog.Default()
	}
	if metricsCollector == nil {
		metricsCollector = metrics.NewMetricsCollector(logger)
	}

	return &BankService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		validator:   validator.NewClientValidator(),
		limits:      limits,
		metrics:     metricsCollector,
		opts:        opts,
		logger:      logger,
	}
}

func (s *BankService) RegisterClient(ctx context.Context, info ClientInfo) (*domain.Client, error) {
	client := domain.NewClient(info.Name, info.NationalID, info.BirthDate, info.Address, s.opts...)

	if err := s.validator.ValidateClient(client); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.metrics.RecordClientRegistered()
	s.logger.InfoContext(ctx, "Client registered",
		slog.String("national_id", client.NationalID))

	return client, nil
}

// OpenCheckingAccount opens a checking account with the next free number for
// the client identified by nationalID.
func (s *BankService) OpenCheckingAccount(ctx context.Context, nationalID string) (*domain.CheckingAccount, error) {
	client, err := s.clientRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	number, err := s.accountRepo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate account number: %w", err)
	}

	account := domain.NewCheckingAccount(number, client, s.limits, s.opts...)

	// Stored before it is attached, so a failed save leaves the client untouched.
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	if err := client.OpenAccount(account); err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.metrics.RecordAccountOpened()
	s.metrics.UpdateAccountBalance(account.Number(), account.Balance().InexactFloat64())
	s.logger.InfoContext(ctx, "Account opened",
		slog.String("account", account.Number()),
		slog.String("branch", account.Branch()),
		slog.String("national_id", nationalID))

	return account, nil
}

// Accounts enumerates the client's accounts in opening order.
func (s *BankService) Accounts(ctx context.Context, nationalID string) (iter.Seq[domain.AccountSnapshot], error) {
	client, err := s.clientRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return domain.Enumerate(client.Accounts()), nil
}
