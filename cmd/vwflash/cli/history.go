/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ConnorHowell/VW-Flash/internal/util"
)

func History() *cobra.Command {
	var (
		limit   int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sign and verify operations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := ro.newTool()
			if err != nil {
				return err
			}
			defer t.Close()

			records, err := t.History(limit)
			if err != nil {
				return err
			}

			for _, rec := range records {
				cmd.Printf("%s  %-6s  %-15s  %x  %s\n",
					rec.CreatedAt.Format(time.RFC3339), rec.Action, rec.Boxcode, rec.Digest[:8], rec.Path)
				if verbose {
					pretty, err := util.RenderCBORPretty(rec.Report)
					if err != nil {
						cmd.Printf("  (unreadable report: %v)\n", err)
						continue
					}
					cmd.Printf("%s\n", pretty)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to list")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "decode and print the stored report for each record")
	return cmd
}
