// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path/filepath"
)

// Config describes the default configuration file format.
type Config struct {
	Network Network `yaml:"network"`
}

// Network selects the chain parameters the node runs with.
type Network struct {
	TestNet bool   `yaml:"testnet"`
	DataDir string `yaml:"datadir"`
}

// NetDataDir returns the directory the node keeps its data in. Networks other
// than main keep their data in a sub directory named by tag.
func (n *Network) NetDataDir(tag string) string {
	if tag == "" {
		return n.DataDir
	}
	return filepath.Join(n.DataDir, tag)
}

// Parse decodes yaml configuration bytes.
func Parse(b []byte) (config Config, err error) {
	if err = yaml.Unmarshal(b, &config); err != nil {
		err = errors.New(fmt.Sprintf("failed to read config file, bad format: %s", err.Error()))
	}
	return
}

// Load loads the configuration at path. Path is either the config file or a
// directory containing config.yml or config.yaml.
func Load(path string) (config Config, err error) {
	if filepath.Base(path) != "config.yml" && filepath.Base(path) != "config.yaml" {
		path2 := filepath.Join(path, "config.yml")
		if ok, err2 := FileExists(path2); !ok || err2 != nil {
			path2 = filepath.Join(path, "config.yaml")
		}
		path = path2
	}
	if ok, err2 := FileExists(path); !ok || err2 != nil {
		if err2 == nil {
			err2 = errors.New(fmt.Sprintf("File doesn't exist: %s", path))
		}
		return config, err2
	}
	var b []byte
	if b, err = ioutil.ReadFile(path); err != nil {
		return
	}
	return Parse(b)
}

// FileExists returns whether the given file or directory exists.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
