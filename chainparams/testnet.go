// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

// testSeeds are the compiled in seed nodes for the test network.
var testSeeds = []uint32{}

// testNetSpec returns the literals of the test network. It starts from the
// main network's literals and overrides what differs.
func testNetSpec() *paramsSpec {
	spec := mainNetSpec()
	spec.net = TestNet
	spec.name = "testnet"

	// The message start string is designed to be unlikely to occur in normal
	// data. The characters are rarely used upper ASCII, not valid as UTF-8,
	// and produce a large 4-byte int at any alignment.
	spec.messageStart = [4]byte{0x8b, 0x11, 0x09, 0x06}
	spec.alertPubKey = "044c0f17b03507d43fa568e5aa7845e5d4398708bdccc0f658d67029224ad170babc8492d73bbc95ffca8f73eab12d9bb2d87ea6671b0ec023e2fdf1a141ac4624"
	spec.defaultPort = 11338
	spec.rpcPort = 11339
	spec.powLimit = powLimitShift(8)
	spec.dataDir = "testnet"

	// Later start time, re-mined for the easier limit.
	spec.genesis.Time = 1425097801
	spec.genesis.Nonce = 27100773
	spec.genesis.Hash = "00a873fa619ec0a76cc38a7abd5209962a592ce5a3e90897f3a886cfba08bfa0"

	spec.base58Prefixes = [numBase58Types][]byte{
		PubKeyAddress:  {111}, // starts with m or n
		ScriptAddress:  {196}, // starts with 2
		SecretKey:      {239}, // starts with 9 (uncompressed) or c (compressed)
		StealthAddress: {80},
		ExtPublicKey:   {0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		ExtSecretKey:   {0x04, 0x35, 0x83, 0x94}, // starts with tprv
	}

	spec.dnsSeeds = nil
	spec.fixedSeeds = testSeeds

	// Proof of stake never starts on the test network.
	spec.lastPOWBlock = 0x7fffffff
	return spec
}

// TestNetParams are the parameters of the test network.
var TestNetParams = mustNewParams(testNetSpec())
