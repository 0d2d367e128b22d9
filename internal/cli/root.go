// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/spf13/cobra"
)

const appRole = "go-image-board"

// NewRootCmd returns the client command tree. Without a subcommand it opens
// the interactive gallery.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Browse and manage a remote image board",
		Long: `board keeps a live view of the images held by a remote image store.

Without a subcommand it opens the interactive gallery, which refreshes on
the poll interval and shows a countdown while the store is unreachable.
The subcommands run a single action and exit.`,
		Example: `  # Open the gallery against a local store
  board --address http://localhost:8090

  # Upload a drawing
  board upload cat.png --title "Cat"

  # Delete without the confirmation question
  board delete cat.png --yes`,
		Version:       buildInfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGallery(cmd, buildInfo)
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newTUICmd(buildInfo))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newUploadCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}
