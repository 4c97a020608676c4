package wallet

import (
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/pkg/cryptography"
)

type Option func(*Wallet) error

func WithKeyType(t cryptography.KeyType) Option {
	return func(w *Wallet) error {
		k, err := cryptography.GenerateKey(t)
		if err != nil {
			return err
		}

		w.key = k
		return nil
	}
}

// WithKey uses an existing key instead of generating one
func WithKey(k cryptography.PrivateKey) Option {
	return func(w *Wallet) error {
		w.key = k
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(w *Wallet) error {
		w.logger = l
		return nil
	}
}
