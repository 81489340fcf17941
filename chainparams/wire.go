// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"io"
	"log"
)

// maxScriptLen bounds scripts read from untrusted bytes.
const maxScriptLen = 1024

// maxBlockSigLen bounds the block signature.
const maxBlockSigLen = 80

// Transaction is a timestamped transaction. It carries a time field after the
// version, which the plain bitcoin wire.MsgTx does not have.
type Transaction struct {
	Version  int32
	Time     uint32
	TxIn     []*wire.TxIn
	TxOut    []*wire.TxOut
	LockTime uint32
}

// Block is a block as stored on disk: header, transactions and the block
// signature.
type Block struct {
	Header       wire.BlockHeader
	Transactions []*Transaction
	Signature    []byte
}

// Serialize writes the transaction in its wire format.
func (tx *Transaction) Serialize(w io.Writer) (err error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[:4], uint32(tx.Version))
	binary.LittleEndian.PutUint32(buf[4:], tx.Time)
	if _, err = w.Write(buf); err != nil {
		return
	}
	if err = WriteVins(w, tx.TxIn); err != nil {
		return
	}
	if err = WriteVouts(w, tx.TxOut); err != nil {
		return
	}
	binary.LittleEndian.PutUint32(buf[:4], tx.LockTime)
	_, err = w.Write(buf[:4])
	return
}

// Bytes returns the serialized transaction.
func (tx *Transaction) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TxHash returns the double sha256 of the serialized transaction.
func (tx *Transaction) TxHash() chainhash.Hash {
	b, err := tx.Bytes()
	if err != nil { // writes to a bytes.Buffer do not fail
		log.Println("failed to serialize tx", err.Error())
		return chainhash.Hash{}
	}
	return chainhash.DoubleHashH(b)
}

// Serialize writes the block in its wire format.
func (b *Block) Serialize(w io.Writer) (err error) {
	if err = b.Header.Serialize(w); err != nil {
		return
	}
	if err = wire.WriteVarInt(w, 0, uint64(len(b.Transactions))); err != nil {
		return
	}
	for _, tx := range b.Transactions {
		if err = tx.Serialize(w); err != nil {
			return
		}
	}
	err = wire.WriteVarBytes(w, 0, b.Signature)
	return
}

// Bytes returns the serialized block.
func (b *Block) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlockHash returns the hash of the block header.
func (b *Block) BlockHash() chainhash.Hash {
	return b.Header.BlockHash()
}

// WriteVins serializes tx vins.
func WriteVins(w io.Writer, vins []*wire.TxIn) (err error) {
	if err = wire.WriteVarInt(w, 0, uint64(len(vins))); err != nil {
		return
	}
	buf := make([]byte, 4)
	for _, vin := range vins {
		if _, err = w.Write(vin.PreviousOutPoint.Hash[:]); err != nil {
			return
		}
		binary.LittleEndian.PutUint32(buf, vin.PreviousOutPoint.Index)
		if _, err = w.Write(buf); err != nil {
			return
		}
		if err = wire.WriteVarBytes(w, 0, vin.SignatureScript); err != nil {
			return
		}
		binary.LittleEndian.PutUint32(buf, vin.Sequence)
		if _, err = w.Write(buf); err != nil {
			return
		}
	}
	return
}

// WriteVouts serializes tx vouts.
func WriteVouts(w io.Writer, vouts []*wire.TxOut) (err error) {
	if err = wire.WriteVarInt(w, 0, uint64(len(vouts))); err != nil {
		return
	}
	buf := make([]byte, 8)
	for _, vout := range vouts {
		binary.LittleEndian.PutUint64(buf, uint64(vout.Value))
		if _, err = w.Write(buf); err != nil {
			return
		}
		if err = wire.WriteVarBytes(w, 0, vout.PkScript); err != nil {
			return
		}
	}
	return
}

// ReadVins deserializes tx vins.
func ReadVins(buf io.Reader) (vins []*wire.TxIn, err error) {
	var txVinsLen uint64
	if txVinsLen, err = wire.ReadVarInt(buf, 0); err != nil {
		log.Println("failed to read tx vin length", err.Error())
		return
	}
	for i := 0; i < int(txVinsLen); i++ {
		txHashB := make([]byte, 32)
		txNB := make([]byte, 4)
		if _, err = io.ReadFull(buf, txHashB); err != nil {
			log.Println("failed to read tx vin prevout hash", err.Error())
			return
		}
		if _, err = io.ReadFull(buf, txNB); err != nil {
			log.Println("failed to read tx vin prevout n", err.Error())
			return
		}

		// Outpoint
		var txHash *chainhash.Hash
		if txHash, err = chainhash.NewHash(txHashB); err != nil {
			return
		}
		outpoint := wire.NewOutPoint(txHash, binary.LittleEndian.Uint32(txNB))

		// ScriptSig
		var txScriptSigB []byte
		if txScriptSigB, err = wire.ReadVarBytes(buf, 0, maxScriptLen, "script sig"); err != nil {
			log.Println("failed to read tx vin script sig", err.Error())
			return
		}

		// Tx sequence
		txSequenceB := make([]byte, 4)
		if _, err = io.ReadFull(buf, txSequenceB); err != nil {
			log.Println("failed to read tx vin sequence number", err.Error())
			return
		}

		txIn := wire.NewTxIn(outpoint, txScriptSigB, nil)
		txIn.Sequence = binary.LittleEndian.Uint32(txSequenceB)
		vins = append(vins, txIn)
	}
	return
}

// ReadVouts deserializes tx vouts.
func ReadVouts(buf io.Reader) (vouts []*wire.TxOut, err error) {
	var txVoutLen uint64
	if txVoutLen, err = wire.ReadVarInt(buf, 0); err != nil {
		return
	}
	for i := 0; i < int(txVoutLen); i++ {
		txValueB := make([]byte, 8)
		if _, err = io.ReadFull(buf, txValueB); err != nil {
			return
		}
		txValue := int64(binary.LittleEndian.Uint64(txValueB))
		var txScriptPubKeyB []byte
		if txScriptPubKeyB, err = wire.ReadVarBytes(buf, 0, maxScriptLen, "script pubkey"); err != nil {
			return
		}
		vouts = append(vouts, wire.NewTxOut(txValue, txScriptPubKeyB))
	}
	return
}

// ReadTransaction reads a timestamped transaction.
func ReadTransaction(buf io.Reader) (tx *Transaction, err error) {
	headB := make([]byte, 8)
	if _, err = io.ReadFull(buf, headB); err != nil {
		log.Println("failed to read tx version", err.Error())
		return
	}
	tx = &Transaction{
		Version: int32(binary.LittleEndian.Uint32(headB[:4])),
		Time:    binary.LittleEndian.Uint32(headB[4:]),
	}
	if tx.TxIn, err = ReadVins(buf); err != nil {
		return nil, err
	}
	if tx.TxOut, err = ReadVouts(buf); err != nil {
		log.Println("failed to read tx vouts", err.Error())
		return nil, err
	}

	// Locktime
	txLockTimeB := make([]byte, 4)
	if _, err = io.ReadFull(buf, txLockTimeB); err != nil {
		log.Println("failed to read tx locktime", err.Error())
		return nil, err
	}
	tx.LockTime = binary.LittleEndian.Uint32(txLockTimeB)
	return
}

// ReadBlock reads a block including its transactions and signature.
func ReadBlock(buf io.Reader) (block *Block, err error) {
	block = &Block{}
	if err = block.Header.Deserialize(buf); err != nil {
		log.Println("failed to read block header", err.Error())
		return nil, err
	}

	var txLen uint64
	if txLen, err = wire.ReadVarInt(buf, 0); err != nil {
		log.Println("failed to read tx count", err.Error())
		return nil, err
	}
	if txLen > wire.MaxBlockPayload {
		return nil, errors.New(fmt.Sprintf("failed to read block, bad tx count %d", txLen))
	}
	for i := 0; i < int(txLen); i++ {
		var tx *Transaction
		if tx, err = ReadTransaction(buf); err != nil {
			return nil, err
		}
		block.Transactions = append(block.Transactions, tx)
	}

	if block.Signature, err = wire.ReadVarBytes(buf, 0, maxBlockSigLen, "block signature"); err != nil {
		log.Println("failed to read block signature", err.Error())
		return nil, err
	}
	return
}
