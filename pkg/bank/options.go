package bank

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/pkg/storage"
)

const (
	DefaultCommitLimit   = 10
	DefaultMintNonceSize = 48
)

type Option func(*Bank) error

func WithStore(s storage.Store) Option {
	return func(b *Bank) error {
		b.store = s
		return nil
	}
}

func WithValidator(v storage.Validator) Option {
	return func(b *Bank) error {
		b.validator = v
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(b *Bank) error {
		b.logger = l
		return nil
	}
}

// WithCommitLimit sets how many txs CommitDay takes when called without a limit
func WithCommitLimit(n int) Option {
	return func(b *Bank) error {
		if n < 0 {
			return errors.Errorf("commit limit must not be negative: %d", n)
		}
		b.commitLimit = n
		return nil
	}
}

func WithMintNonceSize(n int) Option {
	return func(b *Bank) error {
		if n < 1 {
			return errors.Errorf("mint nonce size must be positive: %d", n)
		}
		b.mintNonceSize = n
		return nil
	}
}
