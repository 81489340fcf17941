// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/magic53/go-chainparams/chainparams"
	"github.com/magic53/go-chainparams/config"
	"log"
)

type paramsSummary struct {
	Network       string   `json:"network"`
	MessageStart  string   `json:"messagestart"`
	Port          uint16   `json:"port"`
	RPCPort       uint16   `json:"rpcport"`
	DataDir       string   `json:"datadir"`
	GenesisHash   string   `json:"genesishash"`
	MerkleRoot    string   `json:"merkleroot"`
	Bits          uint32   `json:"bits"`
	Nonce         uint32   `json:"nonce"`
	LastPOWBlock  int32    `json:"lastpowblock"`
	POSStartBlock int32    `json:"posstartblock"`
	DNSSeeds      []string `json:"dnsseeds"`
	FixedSeeds    []string `json:"fixedseeds"`
	Genesis       string   `json:"genesis,omitempty"`
}

func main() {
	testnet := flag.Bool("testnet", false, "use the test network")
	confPath := flag.String("conf", "", "path to config.yml or the directory containing it")
	dumpGenesis := flag.Bool("dumpgenesis", false, "include the serialized genesis block")
	flag.Parse()

	var cfg config.Config
	if *confPath != "" {
		var err error
		if cfg, err = config.Load(*confPath); err != nil {
			log.Fatalln("failed to load config", err.Error())
		}
	}
	// -testnet on the command line wins over the config file
	if *testnet {
		cfg.Network.TestNet = true
	}

	if err := chainparams.SelectNetwork(cfg.Network.TestNet); err != nil {
		log.Fatalln("failed to select network", err.Error())
	}
	params := chainparams.Active()
	genesis := params.GenesisBlock()
	log.Printf("%s.hashGenesisBlock == %s\n", params.Name(), params.GenesisHash())
	log.Printf("%s.hashMerkleRoot == %s\n", params.Name(), genesis.Header.MerkleRoot)
	log.Printf("%s.nBits == %d\n", params.Name(), genesis.Header.Bits)
	log.Printf("%s.nNonce == %d\n", params.Name(), genesis.Header.Nonce)

	magic := params.MessageStart()
	summary := paramsSummary{
		Network:       params.Name(),
		MessageStart:  hex.EncodeToString(magic[:]),
		Port:          params.DefaultPort(),
		RPCPort:       params.RPCPort(),
		DataDir:       cfg.Network.NetDataDir(params.DataDir()),
		GenesisHash:   params.GenesisHash().String(),
		MerkleRoot:    genesis.Header.MerkleRoot.String(),
		Bits:          genesis.Header.Bits,
		Nonce:         genesis.Header.Nonce,
		LastPOWBlock:  params.LastPOWBlock(),
		POSStartBlock: params.POSStartBlock(),
	}
	for _, seed := range params.DNSSeeds() {
		summary.DNSSeeds = append(summary.DNSSeeds, seed.Host)
	}
	for _, seed := range params.FixedSeeds() {
		summary.FixedSeeds = append(summary.FixedSeeds, fmt.Sprintf("%s:%d", seed.IP, seed.Port))
	}
	if *dumpGenesis {
		b, err := genesis.Bytes()
		if err != nil {
			log.Fatalln("failed to serialize genesis block", err.Error())
		}
		summary.Genesis = hex.EncodeToString(b)
	}

	if js, err := json.MarshalIndent(summary, "", "  "); err == nil {
		fmt.Println(string(js))
	}
}
