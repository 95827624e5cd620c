// Package report renders account statements, filtered histories and account
// listings for the console.
package report

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"banking_ledger/internal/domain"
	"banking_ledger/pkg/money"
)

type Writer struct {
	w io.Writer
	f *money.Formatter
}

// NewWriter renders to w. A nil formatter uses money.Default.
func NewWriter(w io.Writer, f *money.Formatter) *Writer {
	if f == nil {
		f = money.Default()
	}
	return &Writer{w: w, f: f}
}

// Statement writes a header, the account statement and a blank line.
func (r *Writer) Statement(acc domain.Account) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Extrato da conta %s ===\n", acc.Number())
	b.WriteString(acc.StatementWith(r.f))
	b.WriteString("\n")
	return r.flush(b.String())
}

// History writes title followed by one line per record, consuming records lazily.
func (r *Writer) History(title string, records iter.Seq[domain.Record]) error {
	if err := r.flush(fmt.Sprintf("=== %s ===\n", title)); err != nil {
		return err
	}
	for rec := range records {
		line := fmt.Sprintf("%s - %s: %s\n", rec.FormattedTimestamp(), rec.Type.Label(), r.f.Format(rec.Amount))
		if err := r.flush(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Writer) Accounts(snapshots iter.Seq[domain.AccountSnapshot]) error {
	if err := r.flush("=== Contas ===\n"); err != nil {
		return err
	}
	for s := range snapshots {
		line := fmt.Sprintf("Agência: %s | Conta: %s | Titular: %s | Saldo: %s\n",
			domain.Branch, s.Number, s.OwnerName, r.f.Format(s.Balance))
		if err := r.flush(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Writer) flush(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
