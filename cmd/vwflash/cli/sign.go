/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cli

import (
	"github.com/spf13/cobra"
)

func Sign() *cobra.Command {
	var (
		out          string
		boxcode      string
		notes        string
		keyPath      string
		secondaryKey string
	)

	cmd := &cobra.Command{
		Use:   "sign <bin file>",
		Short: "Append a metadata and signature trailer to a firmware payload.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ro.newTool()
			if err != nil {
				return err
			}
			defer t.Close()

			outPath, err := t.SignFile(args[0], out, boxcode, notes, keyPath, secondaryKey)
			if err != nil {
				return err
			}
			cmd.Printf("wrote signed image to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path (default: <input>.signed.bin)")
	cmd.Flags().StringVar(&boxcode, "boxcode", "", "ECU box code to embed (15 bytes max)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes to embed (70 bytes max)")
	cmd.Flags().StringVar(&keyPath, "key", "", "primary signing key (PEM or DER)")
	cmd.Flags().StringVar(&secondaryKey, "secondary-key", "", "optional independent second signing key")
	cmd.MarkFlagRequired("key")
	return cmd
}
