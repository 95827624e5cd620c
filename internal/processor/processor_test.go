package processor

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository/memory"
	"banking_ledger/internal/service"
	"banking_ledger/pkg/metrics"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	out       *bytes.Buffer
	account   *domain.CheckingAccount
	processor *TransactionProcessor
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	accRepo := memory.NewAccountRepository()
	account := domain.NewCheckingAccount("1", domain.NewClient("Ana", "111", "", ""), domain.DefaultCheckingLimits())
	require.NoError(t, accRepo.Save(ctx, account))

	out := &bytes.Buffer{}
	proc := NewTransactionProcessor(accRepo, service.NewNotificationService(out, nil), metrics.NewMetricsCollector(nil), nil)

	return &testEnv{out: out, account: account, processor: proc}
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (e *testEnv) lines() []string {
	return strings.Split(strings.TrimSpace(e.out.String()), "\n")
}

func TestTransactionProcessor_Process_Deposit(t *testing.T) {
	env := setup(t)

	ok := env.processor.Process(context.Background(), "1", domain.NewDepositOperation(amount("1000")))

	assert.True(t, ok)
	assert.True(t, env.account.Balance().Equal(amount("1000")))
	assert.Equal(t, []string{"Depósito realizado com sucesso!"}, env.lines())
}

func TestTransactionProcessor_Process_RejectsWithReason(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	assert.False(t, env.processor.Process(ctx, "1", domain.NewDepositOperation(amount("0"))))
	assert.False(t, env.processor.Process(ctx, "1", domain.NewWithdrawOperation(amount("600"))))
	assert.False(t, env.processor.Process(ctx, "1", domain.NewWithdrawOperation(amount("100"))))
	assert.False(t, env.processor.Process(ctx, "9", domain.NewDepositOperation(amount("10"))))

	assert.Equal(t, []string{
		"Depósito inválido.",
		"Valor excede o limite de saque.",
		"Saldo insuficiente.",
		"Conta não encontrada.",
	}, env.lines())
	assert.True(t, env.account.Balance().IsZero())
	assert.Zero(t, env.account.History().Len())
}

func TestTransactionProcessor_ProcessAll(t *testing.T) {
	env := setup(t)
	ops := []domain.Operation{
		domain.NewDepositOperation(amount("1000")),
		domain.NewWithdrawOperation(amount("100")),
		domain.NewWithdrawOperation(amount("100")),
		domain.NewWithdrawOperation(amount("100")),
		domain.NewWithdrawOperation(amount("100")),
	}

	succeeded := env.processor.ProcessAll(context.Background(), "1", ops)

	assert.Equal(t, 4, succeeded)
	assert.True(t, env.account.Balance().Equal(amount("700")))
	assert.Equal(t, "Limite de saques diários atingido.", env.lines()[4])
}

func TestTransactionProcessor_NilCollaborators(t *testing.T) {
	ctx := context.Background()
	accRepo := memory.NewAccountRepository()
	account := domain.NewCheckingAccount("1", nil, domain.DefaultCheckingLimits())
	require.NoError(t, accRepo.Save(ctx, account))
	proc := NewTransactionProcessor(accRepo, nil, nil, nil)

	assert.True(t, proc.Process(ctx, "1", domain.NewDepositOperation(amount("50"))))
	assert.False(t, proc.Process(ctx, "1", domain.NewWithdrawOperation(amount("80"))))
	assert.True(t, account.Balance().Equal(amount("50")))
}
