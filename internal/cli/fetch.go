// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fetch <file>",
		Short: "Download an image",
		Long: `Downloads the image binary. It is saved under its own name in the
current directory unless --output names another path; "-" writes it to
standard output.`,
		Example: `  board fetch cat.png
  board fetch cat.png -o /tmp/cat.png
  board fetch cat.png -o - | display`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *commandSession) error {
				data, err := s.Images.FetchImage(ctx, args[0])
				if err != nil {
					return err
				}

				if output == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}

				path := output
				if path == "" {
					path = filepath.Base(args[0])
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("save image: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes)\n", path, len(data))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `destination path, "-" for stdout`)

	return cmd
}
