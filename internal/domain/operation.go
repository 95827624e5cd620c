package domain

import (
	"fmt"
	"strings"

	"banking_ledger/pkg/audit"
	"banking_ledger/pkg/money"

	"github.com/shopspring/decimal"
)

// Operation is a single deposit or withdrawal applied to an account.
type Operation interface {
	Type() TransactionType
	Amount() decimal.Decimal
	Apply(acc Account) error
}

type DepositOperation struct {
	amount decimal.Decimal
	audit  *audit.Logger
}

func NewDepositOperation(amount decimal.Decimal, opts ...Option) *DepositOperation {
	return &DepositOperation{amount: amount, audit: newSettings(opts).audit}
}

func (o *DepositOperation) Type() TransactionType   { return TypeDeposit }
func (o *DepositOperation) Amount() decimal.Decimal { return o.amount }

func (o *DepositOperation) Apply(acc Account) error {
	return audit.Wrap(o.audit, "Apply", func() error {
		if acc == nil {
			return ErrNilAccount
		}
		return acc.Deposit(o.amount)
	})
}

type WithdrawOperation struct {
	amount decimal.Decimal
	audit  *audit.Logger
}

func NewWithdrawOperation(amount decimal.Decimal, opts ...Option) *WithdrawOperation {
	return &WithdrawOperation{amount: amount, audit: newSettings(opts).audit}
}

func (o *WithdrawOperation) Type() TransactionType   { return TypeWithdrawal }
func (o *WithdrawOperation) Amount() decimal.Decimal { return o.amount }

func (o *WithdrawOperation) Apply(acc Account) error {
	return audit.Wrap(o.audit, "Apply", func() error {
		if acc == nil {
			return ErrNilAccount
		}
		return acc.Withdraw(o.amount)
	})
}

func NewOperation(t TransactionType, amount decimal.Decimal, opts ...Option) (Operation, error) {
	switch t {
	case TypeDeposit:
		return NewDepositOperation(amount, opts...), nil
	case TypeWithdrawal:
		return NewWithdrawOperation(amount, opts...), nil
	default:
		return nil, fmt.Errorf("unknown transaction type: %s", t)
	}
}

// ParseOperation reads "<kind>:<amount>", e.g. "deposit:1000" or "saque:200".
func ParseOperation(s string, opts ...Option) (Operation, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid operation %q: expected kind:amount", s)
	}
	t, err := ParseTransactionType(kind)
	if err != nil {
		return nil, fmt.Errorf("invalid operation %q: %w", s, err)
	}
	amount, err := money.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid operation %q: %w", s, err)
	}
	return NewOperation(t, amount, opts...)
}
