// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"github.com/btcsuite/btcd/chaincfg"
	"sync"
)

// Registry holds the active network parameters. The active network is
// written exactly once: by the first Select, or by the first Active which
// fixes the main network. It can't be changed afterwards, so any number of
// goroutines may read it without further locking.
type Registry struct {
	once   sync.Once
	active *Params
	params map[Network]*Params
}

// NewRegistry returns a registry choosing between the main and test network.
func NewRegistry() *Registry {
	return &Registry{
		params: map[Network]*Params{
			MainNet: MainNetParams,
			TestNet: TestNetParams,
		},
	}
}

// Select sets the active network. Selecting an unknown network returns
// UnknownNetworkError, selecting a different network once one is active
// returns ErrAlreadySelected.
func (r *Registry) Select(net Network) error {
	p, ok := r.params[net]
	if !ok {
		return UnknownNetworkError(net)
	}
	r.once.Do(func() {
		r.active = p
	})
	if r.active != p {
		return ErrAlreadySelected
	}
	return nil
}

// SelectNetwork selects the test network if testnet is set and the main
// network otherwise.
func (r *Registry) SelectNetwork(testnet bool) error {
	if testnet {
		return r.Select(TestNet)
	}
	return r.Select(MainNet)
}

// Active returns the active network parameters, fixing the main network if
// none was selected.
func (r *Registry) Active() *Params {
	r.once.Do(func() {
		r.active = r.params[MainNet]
	})
	return r.active
}

// defaultRegistry is the process wide registry.
var defaultRegistry = NewRegistry()

// Select sets the active network of the process. It must be called during
// startup before anything reads Active.
func Select(net Network) error {
	return defaultRegistry.Select(net)
}

// SelectNetwork selects the process network from the testnet switch.
func SelectNetwork(testnet bool) error {
	return defaultRegistry.SelectNetwork(testnet)
}

// Active returns the process network parameters.
func Active() *Params {
	return defaultRegistry.Active()
}

func init() {
	// Register the networks so btcutil recognises their address magics.
	for _, p := range []*Params{MainNetParams, TestNetParams} {
		if err := chaincfg.Register(p.ChainConfig()); err != nil {
			panic("chainparams: failed to register " + p.Name() + ": " + err.Error())
		}
	}
}
