// Package config holds the ledger's runtime settings: logging, the checking
// account limits, currency display and the audit trail switch.
package config

import (
	"errors"
	"strings"

	"banking_ledger/internal/domain"

	"github.com/shopspring/decimal"
)

type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Checking    CheckingConfig
	Currency    CurrencyConfig
	Audit       AuditConfig

	// ConfigFile is the file the values were read from, empty when only
	// defaults and environment variables were used.
	ConfigFile string
}

type ApplicationConfig struct {
	Env  string
	Name string
}

type LoggingConfig struct {
	Level string
}

// CheckingConfig sets the limits applied to newly opened checking accounts.
type CheckingConfig struct {
	OverdraftLimit       decimal.Decimal // Maximum amount of a single withdrawal
	DailyWithdrawalLimit int             // Maximum number of withdrawals per day
}

// CurrencyConfig controls how amounts are printed.
type CurrencyConfig struct {
	Symbol            string
	DecimalSeparator  string
	ThousandSeparator string
}

type AuditConfig struct {
	Enabled bool
}

func (c *Config) CheckingLimits() domain.CheckingLimits {
	return domain.CheckingLimits{
		OverdraftLimit:       c.Checking.OverdraftLimit,
		DailyWithdrawalLimit: c.Checking.DailyWithdrawalLimit,
	}
}

func (c *Config) validate() error {
	var validationErrors []string

	if !c.Checking.OverdraftLimit.IsPositive() {
		validationErrors = append(validationErrors, "CHECKING_OVERDRAFT_LIMIT must be greater than 0")
	}
	if c.Checking.DailyWithdrawalLimit <= 0 {
		validationErrors = append(validationErrors, "CHECKING_DAILY_WITHDRAWAL_LIMIT must be greater than 0")
	}

	if c.Currency.Symbol == "" {
		validationErrors = append(validationErrors, "CURRENCY_SYMBOL is required")
	}
	if c.Currency.DecimalSeparator == "" {
		validationErrors = append(validationErrors, "CURRENCY_DECIMAL_SEPARATOR is required")
	}
	if c.Currency.DecimalSeparator == c.Currency.ThousandSeparator {
		validationErrors = append(validationErrors, "CURRENCY_THOUSAND_SEPARATOR must differ from CURRENCY_DECIMAL_SEPARATOR")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
