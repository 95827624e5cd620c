package domain

import (
	"time"

	"banking_ledger/pkg/audit"

	"github.com/shopspring/decimal"
)

type CheckingLimits struct {
	// OverdraftLimit caps a single withdrawal regardless of the balance.
	OverdraftLimit       decimal.Decimal
	DailyWithdrawalLimit int
}

func DefaultCheckingLimits() CheckingLimits {
	return CheckingLimits{
		OverdraftLimit:       decimal.NewFromInt(500),
		DailyWithdrawalLimit: 3,
	}
}

type CheckingAccount struct {
	baseAccount
	limits           CheckingLimits
	withdrawalsToday int
	withdrawalDay    time.Time
}

var _ Account = (*CheckingAccount)(nil)

func NewCheckingAccount(number string, owner *Client, limits CheckingLimits, opts ...Option) *CheckingAccount {
	return &CheckingAccount{
		baseAccount: newBaseAccount(number, owner, newSettings(opts)),
		limits:      limits,
	}
}

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal { return a.limits.OverdraftLimit }
func (a *CheckingAccount) DailyWithdrawalLimit() int       { return a.limits.DailyWithdrawalLimit }

// WithdrawalsToday is the number of successful withdrawals made on the
// current calendar day.
func (a *CheckingAccount) WithdrawalsToday() int {
	return a.withdrawalsOn(a.now())
}

// Withdraw checks, in order: amount sign, per-withdrawal limit, daily count,
// balance. The first failing check is returned and nothing changes.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	return audit.Wrap(a.audit, "Withdraw", func() error {
		if !amount.IsPositive() {
			return ErrInvalidAmount
		}
		if amount.GreaterThan(a.limits.OverdraftLimit) {
			return ErrExceedsWithdrawalLimit
		}
		now := a.now()
		made := a.withdrawalsOn(now)
		if made >= a.limits.DailyWithdrawalLimit {
			return ErrDailyWithdrawalLimit
		}
		if amount.GreaterThan(a.balance) {
			return ErrInsufficientFunds
		}

		a.balance = a.balance.Sub(amount)
		a.withdrawalsToday = made + 1
		a.withdrawalDay = now
		a.history.Register(TypeWithdrawal, amount)
		return nil
	})
}

func (a *CheckingAccount) withdrawalsOn(day time.Time) int {
	if a.withdrawalDay.IsZero() || !sameDay(a.withdrawalDay, day) {
		return 0
	}
	return a.withdrawalsToday
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
