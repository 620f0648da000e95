/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultPath is where the tool looks for its config file when no explicit
// path is given.
const DefaultPath = "vwflash_config.json"

// Config captures the tunables of the signing and verification layer.
type Config struct {
	// PublicKeyPath names the trust-anchor public key used to validate
	// primary signatures. It is explicit configuration, not an ambient
	// well-known location.
	PublicKeyPath string `json:"public_key"`
	// DBPath names the SQLite database holding the local audit trail.
	DBPath string `json:"db_path"`
	// EnforceSignature switches verification from report-only to strict:
	// payloads with an unauthentic trailer are refused.
	EnforceSignature bool `json:"enforce_signature"`

	Logger *log.Logger `json:"-"`
}

// Default returns the stock configuration, pointing at the distribution
// key location.
func Default() Config {
	return Config{
		PublicKeyPath: filepath.Join("data", "VW_Flash.pub"),
		DBPath:        "vwflash_state.db",
	}
}

// Load reads the config file at path, falling back to Default when the file
// does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
