package wallet

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tcfw/bankchain/pkg/bank"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return logrus.NewEntry(l)
}

func newTestWallet(t *testing.T, opts ...Option) *Wallet {
	opts = append([]Option{WithLogger(quietLogger())}, opts...)

	w, err := Generate(opts...)
	if err != nil {
		t.Fatal(err)
	}

	return w
}

func newTestBank(t *testing.T) (*bank.Bank, *bank.Operator) {
	b, op, err := bank.New(bank.WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	return b, op
}

func mint(t *testing.T, op *bank.Operator, w *Wallet) {
	if _, err := op.Mint(w.Address()); err != nil {
		t.Fatal(err)
	}
}

func commit(t *testing.T, b *bank.Bank, limit ...int) {
	if _, err := b.CommitDay(limit...); err != nil {
		t.Fatal(err)
	}
}

func refresh(t *testing.T, b *bank.Bank, ws ...*Wallet) {
	for _, w := range ws {
		if err := w.Refresh(b); err != nil {
			t.Fatal(err)
		}
	}
}

// richDude gets 15 coins, each committed with an empty day in between
func richDude(t *testing.T, b *bank.Bank, op *bank.Operator) *Wallet {
	w := newTestWallet(t)

	for i := 0; i < 15; i++ {
		mint(t, op, w)
		commit(t, b)
		commit(t, b)
		refresh(t, b, w)
	}

	return w
}
