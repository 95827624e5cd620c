package cli

import (
	"context"
	"flag"
	"io"

	"banking_ledger/internal/service"

	"github.com/google/subcommands"
)

type demoCmd struct {
	metrics bool

	out    io.Writer
	errOut io.Writer
}

func (*demoCmd) Name() string { return "demo" }
func (*demoCmd) Synopsis() string {
	return "run the reference scenario: one client, one checking account, a deposit and a withdrawal"
}
func (*demoCmd) Usage() string {
	return `ledger demo [-metrics]

  Registers a client, opens a checking account, deposits 1000, withdraws 200,
  then prints the statement, a deposits-only report and the client's accounts.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.metrics, "metrics", false, "Print the collected metrics after the scenario.")
}

func (c *demoCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, errOut := stdout(c.out), stderr(c.errOut)

	a, err := loadApp(out, errOut)
	if err != nil {
		return fail(errOut, err)
	}

	s := session{
		client: service.ClientInfo{
			Name:       "João da Silva",
			NationalID: "123.456.789-00",
			BirthDate:  "15/04/1985",
			Address:    "Rua das Flores, 100 - São Paulo/SP",
		},
		ops:      []string{"deposit:1000", "withdraw:200"},
		filter:   "deposit",
		filtered: "Depósitos",
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
