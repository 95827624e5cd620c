package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"banking_ledger/internal/domain"
	"banking_ledger/internal/service"

	"github.com/google/subcommands"
)

type applyCmd struct {
	client  service.ClientInfo
	filter  string
	metrics bool

	out    io.Writer
	errOut io.Writer
}

func (*applyCmd) Name() string { return "apply" }
func (*applyCmd) Synopsis() string {
	return "apply a list of deposits and withdrawals to a new checking account"
}
func (*applyCmd) Usage() string {
	return `ledger apply [-name <name>] [-cpf <cpf>] [-birth <DD/MM/YYYY>] [-address <address>] [-filter <kind>] <kind:amount>...

  Opens a checking account for the given client and applies each operation in
  order. Failed operations are reported and skipped. Kinds are deposit
  (depósito) and withdraw (saque).

Usage Examples:
$ ledger apply deposit:1000 withdraw:200 withdraw:600
$ ledger apply -filter saque deposit:300 saque:50
`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client.Name, "name", "Cliente", "Client name.")
	f.StringVar(&c.client.NationalID, "cpf", "000.000.000-00", "Client CPF.")
	f.StringVar(&c.client.BirthDate, "birth", "01/01/1990", "Client birth date (DD/MM/YYYY).")
	f.StringVar(&c.client.Address, "address", "", "Client address.")
	f.StringVar(&c.filter, "filter", "", "Also print the history restricted to this kind (deposit, withdraw).")
	f.BoolVar(&c.metrics, "metrics", false, "Print the collected metrics after the operations.")
}

func (c *applyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, errOut := stdout(c.out), stderr(c.errOut)

	if f.NArg() == 0 {
		fmt.Fprintln(errOut, "Error: at least one operation is required")
		f.Usage()
		return subcommands.ExitUsageError
	}

	s := session{
		client: c.client,
		ops:    f.Args(),
		filter: c.filter,
	}
	if c.filter != "" {
		t, err := domain.ParseTransactionType(c.filter)
		if err != nil {
			return fail(errOut, err)
		}
		s.filtered = fmt.Sprintf("Histórico: %s", t.Label())
	}

	a, err := loadApp(out, errOut)
	if err != nil {
		return fail(errOut, err)
	}
	if err := a.run(ctx, s); err != nil {
		return fail(errOut, err)
	}

	if c.metrics {
		if err := a.metrics.WriteText(out); err != nil {
			return fail(errOut, err)
		}
	}
	return subcommands.ExitSuccess
}
