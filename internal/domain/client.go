package domain

import (
	"slices"

	"banking_ledger/pkg/audit"
)

type Client struct {
	Name       string
	NationalID string
	BirthDate  string
	Address    string

	accounts []Account
	audit    *audit.Logger
}

func NewClient(name, nationalID, birthDate, address string, opts ...Option) *Client {
	s := newSettings(opts)
	return &Client{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
		Address:    address,
		audit:      s.audit,
	}
}

// OpenAccount appends acc to the client's accounts. The account must be owned
// by c or have no owner.
func (c *Client) OpenAccount(acc Account) error {
	return audit.Wrap(c.audit, "OpenAccount", func() error {
		if acc == nil {
			return ErrNilAccount
		}
		if owner := acc.Owner(); owner != nil && owner != c {
			return ErrAccountOwnerMismatch
		}
		c.accounts = append(c.accounts, acc)
		return nil
	})
}

func (c *Client) Accounts() []Account {
	return slices.Clone(c.accounts)
}
