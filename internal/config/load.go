package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// LoadConfig loads "<name>.env" from ./configs or the working directory, then
// applies environment variables on top. A missing file is not an error.
func LoadConfig(configName string) (*Config, error) {
	return loadConfig(fmt.Sprintf("%s.env", configName), "env")
}

// Default returns the configuration built from defaults and the environment only.
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return build(v)
}

func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file (%s): %w", v.ConfigFileUsed(), err)
		}
	}

	v.AutomaticEnv()

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	overdraft, err := decimal.NewFromString(v.GetString("CHECKING_OVERDRAFT_LIMIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: CHECKING_OVERDRAFT_LIMIT: %w", err)
	}

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Checking: CheckingConfig{
			OverdraftLimit:       overdraft,
			DailyWithdrawalLimit: v.GetInt("CHECKING_DAILY_WITHDRAWAL_LIMIT"),
		},
		Currency: CurrencyConfig{
			Symbol:            v.GetString("CURRENCY_SYMBOL"),
			DecimalSeparator:  v.GetString("CURRENCY_DECIMAL_SEPARATOR"),
			ThousandSeparator: v.GetString("CURRENCY_THOUSAND_SEPARATOR"),
		},
		Audit: AuditConfig{
			Enabled: v.GetBool("AUDIT_ENABLED"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "banking-ledger")

	// Logs go to stderr; "info" keeps the console report readable.
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("CHECKING_OVERDRAFT_LIMIT", "500")
	v.SetDefault("CHECKING_DAILY_WITHDRAWAL_LIMIT", 3)

	v.SetDefault("CURRENCY_SYMBOL", "R$")
	v.SetDefault("CURRENCY_DECIMAL_SEPARATOR", ".")
	v.SetDefault("CURRENCY_THOUSAND_SEPARATOR", "")

	v.SetDefault("AUDIT_ENABLED", true)
}
