// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Hasher supplies the block identity hash and the transaction merkle root.
type Hasher interface {
	BlockHash(header *wire.BlockHeader) chainhash.Hash
	MerkleRoot(txs []*Transaction) chainhash.Hash
}

// DoubleSHA256 hashes headers and transactions with double sha256.
var DoubleSHA256 Hasher = doubleSHA256{}

type doubleSHA256 struct{}

func (doubleSHA256) BlockHash(header *wire.BlockHeader) chainhash.Hash {
	return header.BlockHash()
}

// MerkleRoot pairs hashes level by level, duplicating the last hash of an
// odd level.
func (doubleSHA256) MerkleRoot(txs []*Transaction) chainhash.Hash {
	if len(txs) == 0 {
		return chainhash.Hash{}
	}
	level := make([]*chainhash.Hash, len(txs))
	for i, tx := range txs {
		hash := tx.TxHash()
		level[i] = &hash
	}
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]*chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, blockchain.HashMerkleBranches(level[i], level[i+1]))
		}
		level = next
	}
	return *level[0]
}
