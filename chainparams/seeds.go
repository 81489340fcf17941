// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"encoding/binary"
	"github.com/btcsuite/btcd/wire"
	"math/rand"
	"net"
	"sync"
	"time"
)

const oneWeek = 7 * 24 * time.Hour

// DNSSeed is a DNS seed host with a display name.
type DNSSeed struct {
	Name string
	Host string
}

var (
	seedRandMu sync.Mutex
	seedRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// ConvertSeeds turns packed IPv4 seed addresses into peer addresses. Each
// value holds the address with its most significant octet first, so
// 0x7f000001 is 127.0.0.1.
//
// A node only connects to one or two seed nodes; once connected it learns a
// pile of addresses with newer timestamps. Seeds are therefore given a random
// last seen time between one and two weeks ago.
func ConvertSeeds(data []uint32, port uint16) []*wire.NetAddress {
	seedRandMu.Lock()
	defer seedRandMu.Unlock()
	return convertSeeds(data, port, time.Now(), seedRand)
}

func convertSeeds(data []uint32, port uint16, now time.Time, rnd *rand.Rand) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(data))
	for _, packed := range data {
		ip := make(net.IP, net.IPv4len)
		binary.BigEndian.PutUint32(ip, packed)

		addr := wire.NewNetAddressIPPort(ip, port, wire.SFNodeNetwork)
		age := time.Duration(rnd.Int63n(int64(oneWeek/time.Second))) * time.Second
		addr.Timestamp = time.Unix(now.Add(-age-oneWeek).Unix(), 0)
		addrs = append(addrs, addr)
	}
	return addrs
}
