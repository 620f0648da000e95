/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Verify() *cobra.Command {
	var (
		secondaryKey string
		strip        string
	)

	cmd := &cobra.Command{
		Use:   "verify <bin file>",
		Short: "Check the signature trailer on a firmware image.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ro.newTool()
			if err != nil {
				return err
			}
			defer t.Close()

			payload, report, verifyErr := t.VerifyFile(args[0], secondaryKey)
			if report != nil {
				cmd.Printf("trailer:   %v\n", report.TrailerPresent)
				if report.TrailerPresent {
					cmd.Printf("boxcode:   %s\n", report.Metadata.Boxcode)
					cmd.Printf("notes:     %s\n", report.Metadata.Notes)
					cmd.Printf("primary:   %s\n", report.Primary)
					cmd.Printf("secondary: %s\n", report.Secondary)
				}
				cmd.Printf("payload:   %d bytes\n", len(payload))
			}
			if verifyErr != nil {
				return verifyErr
			}

			if strip != "" {
				if err := os.WriteFile(strip, payload, 0o644); err != nil {
					return err
				}
				cmd.Printf("wrote raw payload to %s\n", strip)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&secondaryKey, "secondary-key", "", "public key for the secondary signature slot")
	cmd.Flags().StringVar(&strip, "strip", "", "write the raw payload (trailer removed) to this path")
	return cmd
}
