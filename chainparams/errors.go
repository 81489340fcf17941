// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"errors"
	"fmt"
)

// ErrAlreadySelected is returned when a different network is selected after
// the active network has been fixed.
var ErrAlreadySelected = errors.New("active network already selected")

// ConstantIntegrityError reports a genesis block whose derived values do not
// match the constants compiled into the network parameters. The parameters
// are corrupt and the node must not start with them.
type ConstantIntegrityError struct {
	Network string
	Field   string
	Want    string
	Got     string
}

func (e *ConstantIntegrityError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: expected %s, got %s", e.Network, e.Field, e.Want, e.Got)
}

// UnknownNetworkError is returned when selecting a network that has no
// parameters.
type UnknownNetworkError Network

func (e UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %d", int(e))
}
