package bank

import (
	"crypto/rand"

	"github.com/pkg/errors"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/tx"
)

// Operator is the privileged capability over a Bank. Only the caller of
// New receives one.
type Operator struct {
	b *Bank
}

// Mint queues a tx creating one coin for target. The signature slot holds
// a random nonce so that mints to the same target stay distinct.
func (o *Operator) Mint(target cryptography.Address) (*tx.Tx, error) {
	if len(target) == 0 {
		return nil, errors.New("mint target is empty")
	}

	nonce := make([]byte, o.b.mintNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "reading mint nonce")
	}

	t := tx.New(tx.TxID{}, target.Clone(), nonce)

	o.b.mu.Lock()
	defer o.b.mu.Unlock()

	if err := o.b.memPool.AddTx(t); err != nil {
		return nil, errors.Wrap(err, "queueing mint")
	}

	o.b.logger.WithField("target", target.String()).Debug("minted coin")

	return t.Clone(), nil
}

func (o *Operator) Bank() *Bank {
	return o.b
}
