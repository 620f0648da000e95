/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package cli is the command line shell around the signing tool. It only
// moves bytes and key paths in and out; all policy lives in internal/tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ConnorHowell/VW-Flash/internal/config"
	"github.com/ConnorHowell/VW-Flash/internal/tool"
)

type rootOptions struct {
	ConfigPath string
	PublicKey  string
	DBPath     string
	Enforce    bool
}

var ro = &rootOptions{}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vwflash",
		Short:        "Sign and verify VW ECU firmware images.",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&ro.ConfigPath, "config", config.DefaultPath, "path to the tool config file")
	pf.StringVar(&ro.PublicKey, "public-key", "", "trust anchor public key (overrides config)")
	pf.StringVar(&ro.DBPath, "db", "", "audit database path (overrides config)")
	pf.BoolVar(&ro.Enforce, "enforce", false, "refuse payloads whose signatures do not verify")

	cmd.AddCommand(Sign())
	cmd.AddCommand(Verify())
	cmd.AddCommand(Keygen())
	cmd.AddCommand(History())
	return cmd
}

// newTool builds a Tool from the config file plus any flag overrides.
func (o *rootOptions) newTool() (*tool.Tool, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.PublicKey != "" {
		cfg.PublicKeyPath = o.PublicKey
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if o.Enforce {
		cfg.EnforceSignature = true
	}
	return tool.New(cfg)
}
