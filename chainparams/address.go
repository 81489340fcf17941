// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"errors"
	"fmt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"
)

// EncodeAddress base58check encodes payload behind the network's version
// bytes for kind.
func (p *Params) EncodeAddress(kind Base58Type, payload []byte) (string, error) {
	prefix := p.Base58Prefix(kind)
	if prefix == nil {
		return "", errors.New(fmt.Sprintf("unknown base58 type %d", kind))
	}
	b := make([]byte, 0, len(prefix)+len(payload)+4)
	b = append(b, prefix...)
	b = append(b, payload...)
	checksum := chainhash.DoubleHashB(b)
	b = append(b, checksum[:4]...)
	return base58.Encode(b), nil
}

// DecodeAddress reverses EncodeAddress, checking the version bytes and the
// checksum.
func (p *Params) DecodeAddress(kind Base58Type, address string) ([]byte, error) {
	prefix := p.Base58Prefix(kind)
	if prefix == nil {
		return nil, errors.New(fmt.Sprintf("unknown base58 type %d", kind))
	}
	b := base58.Decode(address)
	if len(b) < len(prefix)+4 {
		return nil, base58.ErrInvalidFormat
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return nil, errors.New(fmt.Sprintf("address %s is not a %s address of this kind", address, p.name))
		}
	}
	payload, checksum := b[:len(b)-4], b[len(b)-4:]
	want := chainhash.DoubleHashB(payload)
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, base58.ErrChecksum
		}
	}
	return payload[len(prefix):], nil
}

// PubKeyHashAddress returns the pay-to-pubkey-hash address of a 20 byte
// pubkey hash.
func (p *Params) PubKeyHashAddress(pkHash []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, p.chainParams)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// ScriptHashAddress returns the pay-to-script-hash address of a 20 byte
// script hash.
func (p *Params) ScriptHashAddress(scriptHash []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(scriptHash, p.chainParams)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
