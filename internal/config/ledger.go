package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tcfw/bankchain/pkg/bank"
	"github.com/tcfw/bankchain/pkg/cryptography"
)

type Ledger struct {
	CommitLimit   int
	MintNonceSize int
}

type Wallet struct {
	KeyType cryptography.KeyType
}

const (
	Cfg_ledger_commitLimit   = "ledger.commitLimit"
	Cfg_ledger_mintNonceSize = "ledger.mintNonceSize"
	Cfg_wallet_keyType       = "wallet.keyType"
)

var (
	ledgerDefaults = map[string]interface{}{
		Cfg_ledger_commitLimit:   bank.DefaultCommitLimit,
		Cfg_ledger_mintNonceSize: bank.DefaultMintNonceSize,
		Cfg_wallet_keyType:       cryptography.KeyTypeEd25519.String(),
	}
)

func init() {
	for k, v := range ledgerDefaults {
		viper.SetDefault(k, v)
	}
}

func buildLedgerConfig() (*Ledger, error) {
	c := &Ledger{
		CommitLimit:   viper.GetInt(Cfg_ledger_commitLimit),
		MintNonceSize: viper.GetInt(Cfg_ledger_mintNonceSize),
	}

	if c.CommitLimit < 0 {
		return nil, errors.Errorf("%s must not be negative", Cfg_ledger_commitLimit)
	}

	if c.MintNonceSize < 1 {
		return nil, errors.Errorf("%s must be positive", Cfg_ledger_mintNonceSize)
	}

	return c, nil
}

func buildWalletConfig() (*Wallet, error) {
	kt, err := cryptography.ParseKeyType(viper.GetString(Cfg_wallet_keyType))
	if err != nil {
		return nil, errors.Wrap(err, Cfg_wallet_keyType)
	}

	return &Wallet{KeyType: kt}, nil
}
