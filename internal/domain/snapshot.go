package domain

import (
	"iter"

	"github.com/shopspring/decimal"
)

type AccountSnapshot struct {
	Number    string
	Balance   decimal.Decimal
	OwnerName string
}

func Snapshot(acc Account) AccountSnapshot {
	s := AccountSnapshot{Number: acc.Number(), Balance: acc.Balance()}
	if owner := acc.Owner(); owner != nil {
		s.OwnerName = owner.Name
	}
	return s
}

// Enumerate yields a snapshot per account in input order. The sequence can be
// ranged over more than once.
func Enumerate(accounts []Account) iter.Seq[AccountSnapshot] {
	return func(yield func(AccountSnapshot) bool) {
		for _, acc := range accounts {
			if !yield(Snapshot(acc)) {
				return
			}
		}
	}
}
