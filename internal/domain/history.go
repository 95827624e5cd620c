package domain

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type History struct {
	records []Record
	now     func() time.Time
}

func NewHistory(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// Register appends a record stamped with the current time. Amounts are not
// validated here; accounts only register amounts they accepted.
func (h *History) Register(t TransactionType, amount decimal.Decimal) Record {
	r := Record{
		ID:        uuid.New(),
		Type:      t,
		Amount:    amount,
		Timestamp: h.now(),
	}
	h.records = append(h.records, r)
	return r
}

func (h *History) Len() int { return len(h.records) }

func (h *History) All() iter.Seq[Record] {
	return h.Report("")
}

// Report yields the records whose type matches kind in chronological order.
// An empty kind yields every record. Each call starts a fresh scan.
func (h *History) Report(kind string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range h.records {
			if kind != "" && !r.Type.Matches(kind) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
