// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"math/big"
	"strconv"
)

// Network identifies a set of chain parameters.
type Network int

const (
	MainNet Network = iota
	TestNet
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return "main"
	case TestNet:
		return "test"
	default:
		return "unknown(" + strconv.Itoa(int(n)) + ")"
	}
}

// Base58Type is the kind of data a base58 string encodes.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	StealthAddress
	ExtPublicKey
	ExtSecretKey

	numBase58Types
)

// bigOne is 1 represented as a big.Int.
var bigOne = big.NewInt(1)

// powLimitShift returns the value 2^(256-shift) - 1.
func powLimitShift(shift uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256-shift), bigOne)
}

// paramsSpec holds the literals a network's parameters are built from.
type paramsSpec struct {
	net          Network
	name         string
	messageStart [4]byte
	alertPubKey  string
	defaultPort  uint16
	rpcPort      uint16
	powLimit     *big.Int
	dataDir      string

	genesis GenesisParams

	base58Prefixes [numBase58Types][]byte
	dnsSeeds       []DNSSeed
	fixedSeeds     []uint32

	poolMaxTransactions      int
	darksendPoolDummyAddress string
	lastPOWBlock             int32
	posStartBlock            int32
}

// Params defines a network by its parameters. Params are built once and
// never modified; accessors hand out copies of slices and big integers.
type Params struct {
	net          Network
	name         string
	messageStart [4]byte
	alertPubKey  []byte
	defaultPort  uint16
	rpcPort      uint16
	powLimit     *big.Int
	dataDir      string

	genesisBlock *Block
	genesisHash  chainhash.Hash

	base58Prefixes [numBase58Types][]byte
	fixedSeeds     []*wire.NetAddress
	dnsSeeds       []DNSSeed

	poolMaxTransactions      int
	darksendPoolDummyAddress string
	lastPOWBlock             int32
	posStartBlock            int32

	chainParams *chaincfg.Params
}

// newParams builds network parameters from spec, constructing and checking
// the genesis block with hasher.
func newParams(spec *paramsSpec, hasher Hasher) (*Params, error) {
	alertPubKey, err := hex.DecodeString(spec.alertPubKey)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("%s: bad alert public key: %s", spec.name, err.Error()))
	}
	for kind, prefix := range spec.base58Prefixes {
		if len(prefix) == 0 {
			return nil, errors.New(fmt.Sprintf("%s: missing base58 prefix %d", spec.name, kind))
		}
	}

	genesis, err := BuildGenesisBlock(spec.name, &spec.genesis, spec.powLimit, hasher)
	if err != nil {
		return nil, err
	}

	p := &Params{
		net:                      spec.net,
		name:                     spec.name,
		messageStart:             spec.messageStart,
		alertPubKey:              alertPubKey,
		defaultPort:              spec.defaultPort,
		rpcPort:                  spec.rpcPort,
		powLimit:                 new(big.Int).Set(spec.powLimit),
		dataDir:                  spec.dataDir,
		genesisBlock:             genesis,
		genesisHash:              hasher.BlockHash(&genesis.Header),
		fixedSeeds:               ConvertSeeds(spec.fixedSeeds, spec.defaultPort),
		dnsSeeds:                 append([]DNSSeed(nil), spec.dnsSeeds...),
		poolMaxTransactions:      spec.poolMaxTransactions,
		darksendPoolDummyAddress: spec.darksendPoolDummyAddress,
		lastPOWBlock:             spec.lastPOWBlock,
		posStartBlock:            spec.posStartBlock,
	}
	for kind, prefix := range spec.base58Prefixes {
		p.base58Prefixes[kind] = append([]byte(nil), prefix...)
	}
	p.chainParams = p.newChainConfig()
	return p, nil
}

// mustNewParams is like newParams but panics on error. It is only called to
// initialize package variables, so corrupt constants abort the process before
// anything reads them.
func mustNewParams(spec *paramsSpec) *Params {
	p, err := newParams(spec, DoubleSHA256)
	if err != nil {
		panic("chainparams: " + err.Error())
	}
	return p
}

// newChainConfig returns the btcd view of the parameters used by btcutil
// address helpers.
func (p *Params) newChainConfig() *chaincfg.Params {
	dnsSeeds := make([]chaincfg.DNSSeed, 0, len(p.dnsSeeds))
	for _, seed := range p.dnsSeeds {
		dnsSeeds = append(dnsSeeds, chaincfg.DNSSeed{Host: seed.Host})
	}
	genesisHash := p.genesisHash
	cfg := &chaincfg.Params{
		Name:        p.name,
		Net:         p.WireNet(),
		DefaultPort: strconv.Itoa(int(p.defaultPort)),
		DNSSeeds:    dnsSeeds,

		// The genesis transaction carries a time field wire.MsgTx cannot
		// represent, only the hash is exposed.
		GenesisBlock: nil,
		GenesisHash:  &genesisHash,
		PowLimit:     new(big.Int).Set(p.powLimit),
		PowLimitBits: p.genesisBlock.Header.Bits,

		// Address encoding magics
		PubKeyHashAddrID: p.base58Prefixes[PubKeyAddress][0],
		ScriptHashAddrID: p.base58Prefixes[ScriptAddress][0],
		PrivateKeyID:     p.base58Prefixes[SecretKey][0],
	}

	// BIP32 hierarchical deterministic extended key magics
	copy(cfg.HDPublicKeyID[:], p.base58Prefixes[ExtPublicKey])
	copy(cfg.HDPrivateKeyID[:], p.base58Prefixes[ExtSecretKey])
	return cfg
}

// Net returns the network identity.
func (p *Params) Net() Network {
	return p.net
}

// Name returns the network name.
func (p *Params) Name() string {
	return p.name
}

// MessageStart returns the bytes that start every p2p message on the network.
func (p *Params) MessageStart() [4]byte {
	return p.messageStart
}

// WireNet returns the message start as the little endian magic number used by
// btcd's wire package.
func (p *Params) WireNet() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.messageStart[:]))
}

// AlertPubKey returns the key that signs alert messages.
func (p *Params) AlertPubKey() []byte {
	return append([]byte(nil), p.alertPubKey...)
}

func (p *Params) DefaultPort() uint16 {
	return p.defaultPort
}

func (p *Params) RPCPort() uint16 {
	return p.rpcPort
}

// PowLimit returns the highest proof of work value a block can have.
func (p *Params) PowLimit() *big.Int {
	return new(big.Int).Set(p.powLimit)
}

// PowLimitBits returns PowLimit in compact form.
func (p *Params) PowLimitBits() uint32 {
	return p.genesisBlock.Header.Bits
}

// GenesisBlock returns the genesis block. Callers must not modify it.
func (p *Params) GenesisBlock() *Block {
	return p.genesisBlock
}

func (p *Params) GenesisHash() chainhash.Hash {
	return p.genesisHash
}

// Base58Prefix returns the version bytes for kind, or nil for an unknown kind.
func (p *Params) Base58Prefix(kind Base58Type) []byte {
	if kind < 0 || kind >= numBase58Types {
		return nil
	}
	return append([]byte(nil), p.base58Prefixes[kind]...)
}

// FixedSeeds returns the compiled in seed peers.
func (p *Params) FixedSeeds() []*wire.NetAddress {
	seeds := make([]*wire.NetAddress, 0, len(p.fixedSeeds))
	for _, seed := range p.fixedSeeds {
		addr := *seed
		addr.IP = append(addr.IP[:0:0], seed.IP...)
		seeds = append(seeds, &addr)
	}
	return seeds
}

func (p *Params) DNSSeeds() []DNSSeed {
	return append([]DNSSeed(nil), p.dnsSeeds...)
}

// LastPOWBlock returns the height of the last proof of work block.
func (p *Params) LastPOWBlock() int32 {
	return p.lastPOWBlock
}

// POSStartBlock returns the height proof of stake blocks are accepted from.
func (p *Params) POSStartBlock() int32 {
	return p.posStartBlock
}

// DataDir returns the sub directory the network keeps its data in, empty for
// the main network.
func (p *Params) DataDir() string {
	return p.dataDir
}

func (p *Params) PoolMaxTransactions() int {
	return p.poolMaxTransactions
}

func (p *Params) DarksendPoolDummyAddress() string {
	return p.darksendPoolDummyAddress
}

// ChainConfig returns the btcd chain configuration for the network. Callers
// must not modify it.
func (p *Params) ChainConfig() *chaincfg.Params {
	return p.chainParams
}
