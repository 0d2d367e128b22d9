// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-image-board/internal/client"
	"github.com/MKhiriev/go-image-board/internal/tui"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/spf13/cobra"
)

func newTUICmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive gallery",
		Long: `Opens the interactive gallery. It refreshes the image list right away and
then on every poll interval until you quit. This is also what board runs
without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGallery(cmd, buildInfo)
		},
	}
}

func runGallery(cmd *cobra.Command, buildInfo models.AppBuildInfo) error {
	toaster := tui.NewToaster()

	session, err := openSession(cmd, toaster, true)
	if err != nil {
		return err
	}
	defer session.Close()

	ui := tui.New(session.Services, session.Images, toaster, tui.Options{
		BuildInfo:      buildInfo,
		StoreURL:       session.Config.Adapter.Address,
		MaxTitleLength: session.Config.Upload.MaxTitleLength,
	}, session.logger)

	return client.NewApp(session.Session, ui, session.logger).Run(cmd.Context())
}
