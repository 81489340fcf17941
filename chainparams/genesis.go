// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"math/big"
	"time"
)

// genesisScriptTag is pushed between the leading zero and the timestamp in
// the coinbase signature script.
const genesisScriptTag = 42

// GenesisParams are the literals a genesis block is built from.
type GenesisParams struct {
	// Timestamp is embedded in the coinbase signature script.
	Timestamp string
	// TxTime is the coinbase transaction time field.
	TxTime uint32
	// Time is the block header timestamp (unix seconds).
	Time  uint32
	Nonce uint32

	// Expected block hash and merkle root, big endian hex.
	Hash       string
	MerkleRoot string
}

// genesisCoinbaseTx builds the coinbase transaction of the genesis block. The
// single output is left empty and cannot be spent.
func genesisCoinbaseTx(g *GenesisParams) (*Transaction, error) {
	script, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisScriptTag).
		AddData([]byte(g.Timestamp)).
		Script()
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Version: 1,
		Time:    g.TxTime,
		TxIn: []*wire.TxIn{
			{
				// Fully null.
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: wire.MaxPrevOutIndex,
				},
				SignatureScript: script,
				Sequence:        wire.MaxTxInSequenceNum,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    0,
				PkScript: []byte{},
			},
		},
		LockTime: 0,
	}, nil
}

// BuildGenesisBlock builds the genesis block for the network and checks the
// derived merkle root and block hash against the expected constants. The
// difficulty bits are the compact form of powLimit. A mismatch is returned as
// a *ConstantIntegrityError.
func BuildGenesisBlock(network string, g *GenesisParams, powLimit *big.Int, hasher Hasher) (*Block, error) {
	wantMerkle, err := chainhash.NewHashFromStr(g.MerkleRoot)
	if err != nil {
		return nil, err
	}
	wantHash, err := chainhash.NewHashFromStr(g.Hash)
	if err != nil {
		return nil, err
	}

	coinbase, err := genesisCoinbaseTx(g)
	if err != nil {
		return nil, err
	}
	block := &Block{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(int64(g.Time), 0),
			Bits:      blockchain.BigToCompact(powLimit),
			Nonce:     g.Nonce,
		},
		Transactions: []*Transaction{coinbase},
		Signature:    []byte{},
	}
	block.Header.MerkleRoot = hasher.MerkleRoot(block.Transactions)

	if !block.Header.MerkleRoot.IsEqual(wantMerkle) {
		return nil, &ConstantIntegrityError{
			Network: network,
			Field:   "merkle root",
			Want:    wantMerkle.String(),
			Got:     block.Header.MerkleRoot.String(),
		}
	}
	hash := hasher.BlockHash(&block.Header)
	if !hash.IsEqual(wantHash) {
		return nil, &ConstantIntegrityError{
			Network: network,
			Field:   "hash",
			Want:    wantHash.String(),
			Got:     hash.String(),
		}
	}
	target := blockchain.CompactToBig(block.Header.Bits)
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return nil, &ConstantIntegrityError{
			Network: network,
			Field:   "proof of work",
			Want:    "hash <= " + target.Text(16),
			Got:     hash.String(),
		}
	}
	return block, nil
}
