package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(h *History, kind string) []Record {
	var out []Record
	for r := range h.Report(kind) {
		out = append(out, r)
	}
	return out
}

func TestHistory_Report_FiltersByKind(t *testing.T) {
	clock := newTestClock()
	h := NewHistory(clock.Now)
	h.Register(TypeDeposit, dec("10"))
	clock.Advance(time.Minute)
	h.Register(TypeWithdrawal, dec("5"))
	clock.Advance(time.Minute)
	h.Register(TypeDeposit, dec("20"))

	for _, kind := range []string{"deposit", "Deposit", "DEPÓSITO", "depósito"} {
		got := collect(h, kind)

		require.Len(t, got, 2, kind)
		assert.True(t, got[0].Amount.Equal(dec("10")), kind)
		assert.True(t, got[1].Amount.Equal(dec("20")), kind)
		assert.True(t, got[0].Timestamp.Before(got[1].Timestamp), kind)
	}

	assert.Len(t, collect(h, "saque"), 1)
	assert.Len(t, collect(h, "withdraw"), 1)
	assert.Len(t, collect(h, ""), 3)
	assert.Empty(t, collect(h, "transfer"))
}

func TestHistory_Report_CountMatchesSuccessfulDeposits(t *testing.T) {
	acc := NewCheckingAccount("1", nil, DefaultCheckingLimits())
	successes := 0
	for _, amount := range []string{"100", "0", "50", "-3", "25"} {
		if acc.Deposit(dec(amount)) == nil {
			successes++
		}
	}
	require.NoError(t, acc.Withdraw(dec("10")))

	assert.Len(t, collect(acc.History(), "Deposit"), successes)
}

func TestHistory_Report_IsRestartableAndLazy(t *testing.T) {
	h := NewHistory(nil)
	for i := 0; i < 5; i++ {
		h.Register(TypeDeposit, dec("1"))
	}
	seq := h.Report("deposit")

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	total := 0
	for range seq {
		total++
	}
	assert.Equal(t, 5, total)

	h.Register(TypeDeposit, dec("1"))
	total = 0
	for range seq {
		total++
	}
	assert.Equal(t, 6, total)
}

func TestParseTransactionType(t *testing.T) {
	for in, want := range map[string]TransactionType{
		"deposit":    TypeDeposit,
		"Depósito":   TypeDeposit,
		"withdraw":   TypeWithdrawal,
		"WITHDRAWAL": TypeWithdrawal,
		" saque ":    TypeWithdrawal,
	} {
		got, err := ParseTransactionType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTransactionType("transfer")
	assert.Error(t, err)
}
