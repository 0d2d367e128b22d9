// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	var (
		title string
		date  string
	)

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload an image",
		Long: `Validates the image locally and uploads it. Without --date the creation
date is taken from the EXIF capture time, or from the file's modification
time when the image carries none.`,
		Example: `  board upload cat.png --title "Cat"
  board upload scan.jpg -t "Old scan" -d 1999-06-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := service.LoadUploadFile(args[0])
			if err != nil {
				return err
			}

			created := file.SuggestedDate
			if date != "" {
				created, err = service.ParseCreationDate(date)
				if err != nil {
					return err
				}
			}

			payload := models.UploadPayload{
				File:         file.Blob,
				Title:        title,
				CreationDate: created,
			}
			return withSession(cmd, func(ctx context.Context, s *commandSession) error {
				return s.Services.MutationService.Upload(ctx, payload)
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "image title")
	cmd.Flags().StringVarP(&date, "date", "d", "", "creation date ("+service.CreationDateLayout+")")

	return cmd
}
