package wallet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/bankchain/pkg/cryptography"
	"github.com/tcfw/bankchain/pkg/storage"
	"github.com/tcfw/bankchain/pkg/tx"
	"github.com/tcfw/bankchain/pkg/wallet/mocks"
)

func TestRoundTrip(t *testing.T) {
	keyTypes := map[string]cryptography.KeyType{
		"ed25519":   cryptography.KeyTypeEd25519,
		"secp256k1": cryptography.KeyTypeSecp256k1,
		"bn256":     cryptography.KeyTypeBn256,
	}

	for name, kt := range keyTypes {
		t.Run(name, func(t *testing.T) {
			b, op := newTestBank(t)
			w := newTestWallet(t, WithKeyType(kt))
			x := newTestWallet(t)

			assert.Equal(t, kt, w.Address().Type())

			mint(t, op, w)
			commit(t, b)
			refresh(t, b, w)
			require.Equal(t, 1, w.Balance())

			s, err := w.CreateTransaction(x.Address())
			require.NoError(t, err)
			require.NotNil(t, s)
			require.True(t, b.Submit(s))

			assert.Equal(t, 1, w.Balance(), "balance holds until committed")

			commit(t, b)
			refresh(t, b, w, x)

			assert.Equal(t, 0, w.Balance())
			assert.Equal(t, 1, x.Balance())
			assert.Equal(t, 0, w.Frozen())
		})
	}
}

func TestFreshWallet(t *testing.T) {
	w := newTestWallet(t)

	assert.Equal(t, 0, w.Balance())
	assert.Equal(t, storage.GenesisBlockID, w.LastSeen())
	assert.Equal(t, cryptography.KeyTypeEd25519, w.Address().Type())

	s, err := w.CreateTransaction(newTestWallet(t).Address())
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestGenerateBadKeyType(t *testing.T) {
	_, err := Generate(WithKeyType(cryptography.KeyType(99)))
	assert.Error(t, err)
}

func TestCreateTransactionFreezes(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)
	bob := newTestWallet(t)

	mint(t, op, alice)
	commit(t, b)
	refresh(t, b, alice)

	s, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 1, alice.Frozen())

	again, err := alice.CreateTransaction(bob.Address())
	assert.NoError(t, err)
	assert.Nil(t, again, "only coin is frozen")

	alice.UnfreezeAll()
	assert.Equal(t, 0, alice.Frozen())

	again, err = alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, s.Input, again.Input)
}

func TestUnfreezeWithoutRefresh(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)
	bob := newTestWallet(t)

	mint(t, op, alice)
	mint(t, op, alice)
	commit(t, b)
	refresh(t, b, alice)
	require.Equal(t, 2, alice.Balance())

	tx1, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.True(t, b.Submit(tx1))
	commit(t, b)

	alice.UnfreezeAll()
	assert.Equal(t, 2, alice.Balance())

	refresh(t, b, bob)
	assert.Equal(t, 1, bob.Balance())

	tx2, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.NotNil(t, tx2)
	tx3, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.NotNil(t, tx3)

	results := map[bool]int{}
	results[b.Submit(tx2)]++
	results[b.Submit(tx3)]++
	assert.Equal(t, map[bool]int{true: 1, false: 1}, results)

	commit(t, b)
	refresh(t, b, alice, bob)

	assert.Equal(t, 0, alice.Balance())
	assert.Equal(t, 0, alice.Frozen())
	assert.Equal(t, 2, bob.Balance())
}

func TestUnfreezeThenRefresh(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)
	bob := newTestWallet(t)

	mint(t, op, alice)
	mint(t, op, alice)
	commit(t, b)
	refresh(t, b, alice)
	require.Equal(t, 2, alice.Balance())

	tx1, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.True(t, b.Submit(tx1))
	commit(t, b)

	alice.UnfreezeAll()
	assert.Equal(t, 2, alice.Balance(), "stale until refresh")

	refresh(t, b, alice, bob)
	assert.Equal(t, 1, alice.Balance())
	assert.Equal(t, 1, bob.Balance())
	assert.Equal(t, 0, alice.Frozen())

	next, err := alice.CreateTransaction(bob.Address())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.NotEqual(t, tx1.Input, next.Input)
	assert.True(t, b.Submit(next))
}

func TestRichDude(t *testing.T) {
	b, op := newTestBank(t)
	rich := richDude(t, b, op)

	assert.Equal(t, 15, rich.Balance())
	assert.Equal(t, b.LatestHash(), rich.LastSeen())
}

func TestCommitLimitAcrossWallets(t *testing.T) {
	b, op := newTestBank(t)
	rich := richDude(t, b, op)
	alice := newTestWallet(t)

	for i := 0; i < 15; i++ {
		s, err := rich.CreateTransaction(alice.Address())
		require.NoError(t, err)
		require.NotNil(t, s)
		require.True(t, b.Submit(s))
	}

	commit(t, b, 5)
	assert.Equal(t, 15, rich.Balance())

	refresh(t, b, rich, alice)
	assert.Equal(t, 10, rich.Balance())
	assert.Equal(t, 5, alice.Balance())

	commit(t, b, 5)
	commit(t, b, 5)
	refresh(t, b, alice)
	assert.Equal(t, 10, rich.Balance())
	assert.Equal(t, 15, alice.Balance())
}

func TestRefreshIdempotent(t *testing.T) {
	b, op := newTestBank(t)
	w := newTestWallet(t)

	mint(t, op, w)
	mint(t, op, w)
	commit(t, b)

	refresh(t, b, w)
	refresh(t, b, w)
	assert.Equal(t, 2, w.Balance())

	commit(t, b)
	refresh(t, b, w)
	assert.Equal(t, 2, w.Balance())
}

func TestRefreshFoldsOldestFirst(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)
	bob := newTestWallet(t)

	mint(t, op, alice)
	commit(t, b)

	// alice spends before ever refreshing so both blocks are new to her
	coin := b.UTXO()[0]
	s, err := tx.Sign(alice.key, coin.ID(), bob.Address())
	require.NoError(t, err)
	require.True(t, b.Submit(s))
	commit(t, b)

	refresh(t, b, alice, bob)

	assert.Equal(t, 0, alice.Balance())
	assert.Equal(t, 1, bob.Balance())
}

func TestRefreshSelfTransfer(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)

	mint(t, op, alice)
	commit(t, b)
	refresh(t, b, alice)

	s, err := alice.CreateTransaction(alice.Address())
	require.NoError(t, err)
	require.True(t, b.Submit(s))
	commit(t, b)
	refresh(t, b, alice)

	assert.Equal(t, 1, alice.Balance())

	next, err := alice.CreateTransaction(alice.Address())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, s.ID(), next.Input)
}

func TestRefreshTracksCoinIDs(t *testing.T) {
	b, op := newTestBank(t)
	alice := newTestWallet(t)
	bob := newTestWallet(t)

	for i := 0; i < 6; i++ {
		mint(t, op, alice)
		commit(t, b)
	}

	for i := 0; i < 3; i++ {
		refresh(t, b, alice)
		s, err := alice.CreateTransaction(bob.Address())
		require.NoError(t, err)
		require.True(t, b.Submit(s))
		commit(t, b)
	}
	refresh(t, b, alice, bob)

	assert.Equal(t, 3, alice.Balance())
	assert.Equal(t, 3, bob.Balance())

	for _, c := range alice.unspent {
		assert.Equal(t, c.tx.ID(), c.id)
	}

	utxo := map[tx.TxID]struct{}{}
	for _, c := range b.UTXO() {
		utxo[c.ID()] = struct{}{}
	}
	for _, c := range alice.Coins() {
		assert.Contains(t, utxo, c.ID())
	}
}

func TestRefreshUnknownLastSeen(t *testing.T) {
	b1, op1 := newTestBank(t)
	b2, op2 := newTestBank(t)
	w := newTestWallet(t)

	mint(t, op1, w)
	commit(t, b1)
	refresh(t, b1, w)

	mint(t, op2, w)
	commit(t, b2)

	seen := w.LastSeen()
	err := w.Refresh(b2)
	assert.True(t, errors.Is(err, ErrUnknownLastSeen), err)
	assert.Equal(t, seen, w.LastSeen())
	assert.Equal(t, 1, w.Balance())
}

func TestRefreshLookupError(t *testing.T) {
	w := newTestWallet(t)

	blk, err := storage.NewBlock(storage.GenesisBlockID, nil)
	require.NoError(t, err)
	tip := blk.ID()

	chain := mocks.NewChain(t)
	chain.On("LatestHash").Return(tip)
	chain.On("LookupBlock", tip).Return(nil, storage.ErrNotFound)

	err = w.Refresh(chain)
	assert.True(t, errors.Is(err, storage.ErrNotFound), err)
	assert.Equal(t, storage.GenesisBlockID, w.LastSeen())
}

func TestRefreshSkipsBlocksByBloom(t *testing.T) {
	w := newTestWallet(t)

	coin := tx.New(tx.TxID{}, w.Address(), []byte("nonce"))

	// the bloom is not part of the block id, so a block can carry a
	// filter that does not match its txs
	hidden, err := storage.NewBlock(storage.GenesisBlockID, []*tx.Tx{coin})
	require.NoError(t, err)
	hidden.Bloom, err = storage.MakeBloom(nil)
	require.NoError(t, err)

	chain := mocks.NewChain(t)
	chain.On("LatestHash").Return(hidden.ID()).Once()
	chain.On("LookupBlock", hidden.ID()).Return(hidden, nil).Once()

	require.NoError(t, w.Refresh(chain))
	assert.Equal(t, 0, w.Balance(), "block skipped")
	assert.Equal(t, hidden.ID(), w.LastSeen())

	w2 := newTestWallet(t, WithKey(w.key))
	hidden.Bloom = nil

	chain.On("LatestHash").Return(hidden.ID()).Once()
	chain.On("LookupBlock", mock.Anything).Return(hidden, nil).Once()

	require.NoError(t, w2.Refresh(chain))
	assert.Equal(t, 1, w2.Balance(), "blocks without bloom are folded")
}
