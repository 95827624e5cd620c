package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

// Label is the name printed in statements.
func (t TransactionType) Label() string {
	switch t {
	case TypeDeposit:
		return "Depósito"
	case TypeWithdrawal:
		return "Saque"
	default:
		return string(t)
	}
}

// Matches reports whether kind names t, ignoring case. Both the type name and
// its label are accepted.
func (t TransactionType) Matches(kind string) bool {
	kind = strings.TrimSpace(kind)
	if strings.EqualFold(kind, string(t)) || strings.EqualFold(kind, t.Label()) {
		return true
	}
	return t == TypeWithdrawal && strings.EqualFold(kind, "withdraw")
}

func ParseTransactionType(kind string) (TransactionType, error) {
	for _, t := range []TransactionType{TypeDeposit, TypeWithdrawal} {
		if t.Matches(kind) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown transaction type: %q", kind)
}

// Record is one history entry. It is a value; copies handed out by History
// cannot alter the log.
type Record struct {
	ID        uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal
	Timestamp time.Time
}

const TimestampLayout = "02/01/2006 15:04:05"

func (r Record) FormattedTimestamp() string {
	return r.Timestamp.Format(TimestampLayout)
}
