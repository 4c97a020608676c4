package node

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/internal/config"
	"github.com/tcfw/bankchain/internal/utils/logging"
	"github.com/tcfw/bankchain/pkg/bank"
	"github.com/tcfw/bankchain/pkg/cryptography"
)

type NodeOption func(*Node) error

func WithBankOptions(opts ...bank.Option) NodeOption {
	return func(n *Node) error {
		n.bankOpts = append(n.bankOpts, opts...)
		return nil
	}
}

func WithKeyType(t cryptography.KeyType) NodeOption {
	return func(n *Node) error {
		n.keyType = t
		return nil
	}
}

func WithLogger(l *logrus.Entry) NodeOption {
	return func(n *Node) error {
		n.logger = l
		return nil
	}
}

// WithDefaultOptions applies the ledger and wallet settings from config
func WithDefaultOptions() NodeOption {
	return func(n *Node) error {
		cfg, err := config.GetConfig()
		if err != nil {
			return errors.Wrap(err, "reading config")
		}

		if n.logger == nil {
			n.logger = logging.Entry()
		}
		n.keyType = cfg.Wallet().KeyType
		n.bankOpts = append(n.bankOpts,
			bank.WithCommitLimit(cfg.Ledger().CommitLimit),
			bank.WithMintNonceSize(cfg.Ledger().MintNonceSize),
		)

		return nil
	}
}
