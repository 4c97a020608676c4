package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tcfw/bankchain/internal/utils/logging"
)

const (
	Cfg_verbose = "verbose"
)

var (
	defaults = map[string]interface{}{
		Cfg_verbose: false,
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Entry().Debug("no .env file found")
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName("bankchain")
	viper.AddConfigPath("/etc/bankchain/")
	viper.AddConfigPath("$HOME/.bankchain")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("BANKCHAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logging.Entry().Debug("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	c := &Config{}

	c.ledger, err = buildLedgerConfig()
	if err != nil {
		return nil, errors.Wrap(err, "ledger config")
	}

	c.wallet, err = buildWalletConfig()
	if err != nil {
		return nil, errors.Wrap(err, "wallet config")
	}

	if viper.GetBool(Cfg_verbose) {
		logging.SetLevel(logrus.DebugLevel)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	ledger *Ledger
	wallet *Wallet
}

func (c *Config) Ledger() *Ledger {
	return c.ledger
}

func (c *Config) Wallet() *Wallet {
	return c.wallet
}
