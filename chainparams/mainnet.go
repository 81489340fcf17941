// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

// mainSeeds are the compiled in seed nodes for the main network, one IPv4
// address per value, most significant octet first.
var mainSeeds = []uint32{
	0x2d3f5a11, // 45.63.90.17
	0x68eee3c2, // 104.238.227.194
	0x6c3d4e0b, // 108.61.78.11
	0xa7b3e415, // 167.179.228.21
	0xc6c7676a, // 198.199.103.106
}

// mainNetSpec returns the literals of the main network.
func mainNetSpec() *paramsSpec {
	return &paramsSpec{
		net:          MainNet,
		name:         "mainnet",
		messageStart: [4]byte{0x9e, 0xee, 0x83, 0x2b},
		alertPubKey:  "024725c9c766a51b223004cbbb41fb3c6c12238de07bae83cd44402ed391bc9f7c",
		defaultPort:  10338,
		rpcPort:      10339,
		powLimit:     powLimitShift(16),
		dataDir:      "",

		genesis: GenesisParams{
			Timestamp:  "The Times 27/Feb/2015 Spock actor Leonard Nimoy dies aged 83. \\\\//_",
			TxTime:     5000000,
			Time:       1425097800, // Sat, 28 Feb 2015 04:30:00 GMT
			Nonce:      13218144,
			Hash:       "000077e8c1bb77813b1528e02dd3c68d5cedeb80897be4394b2fe8b863ed0c14",
			MerkleRoot: "1779fb5e09105de93d41bc0bfcf172c9ecd16b9910113eed2cd63d1f89a4c5f5",
		},

		// Address encoding magics
		base58Prefixes: [numBase58Types][]byte{
			PubKeyAddress:  {80},  // starts with Z
			ScriptAddress:  {5},   // starts with 3
			SecretKey:      {208}, // 80 + 128
			StealthAddress: {78},
			ExtPublicKey:   {0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
			ExtSecretKey:   {0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		},

		dnsSeeds: []DNSSeed{
			{Name: "ziftrcoin.com", Host: "seed.ziftrcoin.com"},
		},
		fixedSeeds: mainSeeds,

		poolMaxTransactions:      3,
		darksendPoolDummyAddress: "",
		lastPOWBlock:             3000000,
		posStartBlock:            171000,
	}
}

// MainNetParams are the parameters of the main network.
var MainNetParams = mustNewParams(mainNetSpec())
