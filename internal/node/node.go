package node

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/internal/utils/logging"
	"github.com/tcfw/bankchain/pkg/bank"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/wallet"
)

// Node wires a bank together with the wallets created against it
type Node struct {
	bank     *bank.Bank
	operator *bank.Operator

	bankOpts []bank.Option
	keyType  cryptography.KeyType

	logger *logrus.Entry
}

func (n *Node) Bank() *bank.Bank {
	return n.bank
}

func (n *Node) Operator() *bank.Operator {
	return n.operator
}

func New(opts ...NodeOption) (*Node, error) {
	n := &Node{
		keyType: cryptography.KeyTypeEd25519,
	}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	if n.logger == nil {
		n.logger = logging.Entry()
	}

	bankOpts := append([]bank.Option{
		bank.WithLogger(n.logger.WithField("component", "bank")),
	}, n.bankOpts...)

	var err error
	n.bank, n.operator, err = bank.New(bankOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating bank")
	}

	n.logger.WithField("keyType", n.keyType.String()).Debug("node ready")

	return n, nil
}

// NewWallet generates a wallet using the node's key type. Extra options
// are applied after the defaults.
func (n *Node) NewWallet(opts ...wallet.Option) (*wallet.Wallet, error) {
	opts = append([]wallet.Option{
		wallet.WithKeyType(n.keyType),
		wallet.WithLogger(n.logger.WithField("component", "wallet")),
	}, opts...)

	w, err := wallet.Generate(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "generating wallet")
	}

	return w, nil
}
