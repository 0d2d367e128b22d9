// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the store is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *commandSession) error {
				if err := s.Images.Health(ctx); err != nil {
					return fmt.Errorf("%w: %w", errStoreDown, err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.MsgHealthy, s.Config.Adapter.Address)
				return err
			})
		},
	}
}
