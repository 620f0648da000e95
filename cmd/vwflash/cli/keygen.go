/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ConnorHowell/VW-Flash/internal/signing"
)

func Keygen() *cobra.Command {
	var (
		bits int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA signing keypair.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := signing.Generate(bits)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, signing.MarshalPrivateKeyPEM(key), 0o600); err != nil {
				return err
			}
			pub, err := signing.MarshalPublicKeyPEM(&key.PublicKey)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out+".pub", pub, 0o644); err != nil {
				return err
			}
			cmd.Printf("wrote %s and %s.pub\n", out, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 1024, "RSA modulus size (the stock scheme uses 1024)")
	cmd.Flags().StringVar(&out, "out", "vwflash.key", "private key output path")
	return cmd
}
