package chainparams

import (
	"bytes"
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"testing"
)

func TestReadBlockGenesis(t *testing.T) {
	for _, p := range []*Params{MainNetParams, TestNetParams} {
		genesis := p.GenesisBlock()
		b, err := genesis.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		// header + tx count + coinbase + empty signature
		if len(b) != wire.MaxBlockHeaderPayload+1+135+1 {
			t.Errorf("%s: unexpected genesis size %d", p.Name(), len(b))
		}
		block, err := ReadBlock(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("%s: failed to read genesis %s", p.Name(), err.Error())
		}
		if block.BlockHash() != p.GenesisHash() {
			t.Errorf("%s: expecting genesis hash after read", p.Name())
		}
		if len(block.Transactions) != 1 {
			t.Fatalf("%s: expecting one transaction", p.Name())
		}
		if block.Transactions[0].TxHash() != genesis.Header.MerkleRoot {
			t.Errorf("%s: expecting coinbase hash to equal merkle root", p.Name())
		}
		if block.Transactions[0].Time != 5000000 {
			t.Errorf("%s: expecting tx time 5000000", p.Name())
		}
		if len(block.Signature) != 0 {
			t.Errorf("%s: expecting empty block signature", p.Name())
		}
	}
}

func TestReadBlockTruncated(t *testing.T) {
	b, err := MainNetParams.GenesisBlock().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{0, 40, wire.MaxBlockHeaderPayload, wire.MaxBlockHeaderPayload + 20, len(b) - 1} {
		if _, err := ReadBlock(bytes.NewReader(b[:n])); err == nil {
			t.Errorf("expecting error reading %d of %d bytes", n, len(b))
		}
	}
}

func TestTransactionTimeAffectsHash(t *testing.T) {
	tx := *MainNetParams.GenesisBlock().Transactions[0]
	hash := tx.TxHash()
	tx.Time++
	if tx.TxHash() == hash {
		t.Error("expecting tx time to be part of the hash")
	}
}

func TestMerkleRoot(t *testing.T) {
	if DoubleSHA256.MerkleRoot(nil) != (chainhash.Hash{}) {
		t.Error("expecting zero merkle root without transactions")
	}

	var txs []*Transaction
	for i := uint32(0); i < 3; i++ {
		txs = append(txs, &Transaction{Version: 1, Time: i, LockTime: i})
	}
	a, b, c := txs[0].TxHash(), txs[1].TxHash(), txs[2].TxHash()
	ab := blockchain.HashMerkleBranches(&a, &b)
	cc := blockchain.HashMerkleBranches(&c, &c)
	want := blockchain.HashMerkleBranches(ab, cc)
	if got := DoubleSHA256.MerkleRoot(txs); got != *want {
		t.Errorf("expecting merkle root %s, got %s", want, got)
	}
	if got := DoubleSHA256.MerkleRoot(txs[:2]); got != *ab {
		t.Errorf("expecting merkle root %s, got %s", ab, got)
	}
}
