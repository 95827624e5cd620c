package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"banking_ledger/pkg/audit"
	"banking_ledger/pkg/money"

	"github.com/shopspring/decimal"
)

const Branch = "0001"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrExceedsWithdrawalLimit = errors.New("amount exceeds withdrawal limit")
	ErrDailyWithdrawalLimit   = errors.New("daily withdrawal limit reached")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrNilAccount             = errors.New("nil account")
	ErrAccountOwnerMismatch   = errors.New("account belongs to another client")
)

// Withdrawable is the withdrawal rule each account kind provides.
type Withdrawable interface {
	Withdraw(amount decimal.Decimal) error
}

type Account interface {
	Withdrawable
	Number() string
	Branch() string
	Balance() decimal.Decimal
	Owner() *Client
	History() *History
	Deposit(amount decimal.Decimal) error
	Statement() string
	StatementWith(f *money.Formatter) string
}

// baseAccount holds what every account kind shares: balance, history and
// deposits. Kinds embed it and add Withdraw.
type baseAccount struct {
	number  string
	owner   *Client
	balance decimal.Decimal
	history *History
	audit   *audit.Logger
	now     func() time.Time
}

func newBaseAccount(number string, owner *Client, s settings) baseAccount {
	return baseAccount{
		number:  number,
		owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(s.now),
		audit:   s.audit,
		now:     s.now,
	}
}

func (a *baseAccount) Number() string           { return a.number }
func (a *baseAccount) Branch() string           { return Branch }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) Owner() *Client           { return a.owner }
func (a *baseAccount) History() *History        { return a.history }

func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	return audit.Wrap(a.audit, "Deposit", func() error {
		if !amount.IsPositive() {
			return ErrInvalidAmount
		}
		a.balance = a.balance.Add(amount)
		a.history.Register(TypeDeposit, amount)
		return nil
	})
}

// Statement lists every record followed by the current balance.
func (a *baseAccount) Statement() string {
	return a.StatementWith(money.Default())
}

func (a *baseAccount) StatementWith(f *money.Formatter) string {
	var b strings.Builder
	for r := range a.history.All() {
		fmt.Fprintf(&b, "%s - %s: %s\n", r.FormattedTimestamp(), r.Type.Label(), f.Format(r.Amount))
	}
	fmt.Fprintf(&b, "Saldo atual: %s\n", f.Format(a.balance))
	return b.String()
}
