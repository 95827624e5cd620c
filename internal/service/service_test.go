package service

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"banking_ledger/internal/repository/memory"
	"banking_ledger/pkg/audit"
	"banking_ledger/pkg/metrics"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validClient = ClientInfo{
	Name:       "Maria Silva",
	NationalID: "123.456.789-00",
	BirthDate:  "01/02/1990",
	Address:    "Rua A, 10",
}

func newBankService(opts ...domain.Option) (*BankService, *memory.AccountRepository) {
	accounts := memory.NewAccountRepository()
	svc := NewBankService(memory.NewClientRepository(), accounts, domain.DefaultCheckingLimits(),
		metrics.NewMetricsCollector(nil), nil, opts...)
	return svc, accounts
}

func TestBankService_RegisterClient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBankService()

	client, err := svc.RegisterClient(ctx, validClient)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", client.Name)

	_, err = svc.RegisterClient(ctx, validClient)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	bad := validClient
	bad.NationalID = "42"
	_, err = svc.RegisterClient(ctx, bad)
	assert.Error(t, err)
}

func TestBankService_OpenCheckingAccount(t *testing.T) {
	ctx := context.Background()
	var trail bytes.Buffer
	svc, accounts := newBankService(domain.WithAudit(audit.New(&trail)))
	client, err := svc.RegisterClient(ctx, validClient)
	require.NoError(t, err)

	first, err := svc.OpenCheckingAccount(ctx, validClient.NationalID)
	require.NoError(t, err)
	second, err := svc.OpenCheckingAccount(ctx, validClient.NationalID)
	require.NoError(t, err)

	assert.Equal(t, "1", first.Number())
	assert.Equal(t, "2", second.Number())
	assert.Same(t, client, first.Owner())
	assert.Len(t, client.Accounts(), 2)
	assert.Equal(t, 2, strings.Count(trail.String(), "Transação: OpenAccount"))

	stored, err := accounts.GetByNumber(ctx, "2")
	require.NoError(t, err)
	assert.Same(t, second, stored)

	_, err = svc.OpenCheckingAccount(ctx, "000.000.000-00")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

type failingAccountRepo struct {
	*memory.AccountRepository
	err error
}

func (r *failingAccountRepo) Save(context.Context, domain.Account) error { return r.err }

func TestBankService_OpenCheckingAccount_SaveFailureLeavesClientUntouched(t *testing.T) {
	ctx := context.Background()
	var trail bytes.Buffer
	saveErr := errors.New("storage unavailable")
	repo := &failingAccountRepo{AccountRepository: memory.NewAccountRepository(), err: saveErr}
	svc := NewBankService(memory.NewClientRepository(), repo, domain.DefaultCheckingLimits(), nil, nil,
		domain.WithAudit(audit.New(&trail)))
	client, err := svc.RegisterClient(ctx, validClient)
	require.NoError(t, err)

	_, err = svc.OpenCheckingAccount(ctx, validClient.NationalID)

	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, client.Accounts())
	assert.Empty(t, trail.String())
}

func TestBankService_Accounts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBankService()
	_, err := svc.RegisterClient(ctx, validClient)
	require.NoError(t, err)
	a, err := svc.OpenCheckingAccount(ctx, validClient.NationalID)
	require.NoError(t, err)
	b, err := svc.OpenCheckingAccount(ctx, validClient.NationalID)
	require.NoError(t, err)
	require.NoError(t, a.Deposit(decimal.NewFromInt(100)))
	require.NoError(t, b.Deposit(decimal.NewFromInt(50)))

	seq, err := svc.Accounts(ctx, validClient.NationalID)
	require.NoError(t, err)

	var got []domain.AccountSnapshot
	for s := range seq {
		got = append(got, s)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Number)
	assert.True(t, got[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2", got[1].Number)
	assert.True(t, got[1].Balance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Maria Silva", got[1].OwnerName)

	_, err = svc.Accounts(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		t    domain.TransactionType
		err  error
		want string
	}{
		{domain.TypeDeposit, nil, "Depósito realizado com sucesso!"},
		{domain.TypeDeposit, domain.ErrInvalidAmount, "Depósito inválido."},
		{domain.TypeWithdrawal, nil, "Saque realizado com sucesso!"},
		{domain.TypeWithdrawal, domain.ErrInvalidAmount, "Saque inválido."},
		{domain.TypeWithdrawal, domain.ErrExceedsWithdrawalLimit, "Valor excede o limite de saque."},
		{domain.TypeWithdrawal, domain.ErrDailyWithdrawalLimit, "Limite de saques diários atingido."},
		{domain.TypeWithdrawal, domain.ErrInsufficientFunds, "Saldo insuficiente."},
		{domain.TypeDeposit, repository.ErrNotFound, "Conta não encontrada."},
		{domain.TypeWithdrawal, errors.New("boom"), "Saque não realizado: boom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.t, tt.err))
	}
}

func TestNotificationService_NilWriter(t *testing.T) {
	svc := NewNotificationService(nil, nil)

	assert.NotPanics(t, func() {
		svc.NotifyOperation(context.Background(), domain.TypeDeposit, nil)
	})
}

func TestNotificationService_NotifyOperation(t *testing.T) {
	var out bytes.Buffer
	svc := NewNotificationService(&out, nil)

	svc.NotifyOperation(context.Background(), domain.TypeDeposit, nil)
	svc.NotifyOperation(context.Background(), domain.TypeWithdrawal, domain.ErrInsufficientFunds)

	assert.Equal(t, "Depósito realizado com sucesso!\nSaldo insuficiente.\n", out.String())
}
