// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const listDateLayout = "2006-01-02 15:04"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the images held by the store",
		Long: `Refreshes once and prints the images newest first. The command fails
when the store cannot be reached.`,
		Example: `  board list
  board list --json | jq '.[].file'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *commandSession) error {
				records, err := refreshedRecords(ctx, s)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), records)
				}
				if len(records) == 0 {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), app.MsgEmptyGallery)
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), recordTable(records))
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the records as a JSON array")

	return cmd
}

// refreshedRecords runs one refresh and returns the records in display
// order. A failed refresh is an error: a one-shot command has no earlier
// snapshot worth showing.
func refreshedRecords(ctx context.Context, s *commandSession) ([]models.ImageRecord, error) {
	if err := s.Services.SyncEngine.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", errStoreDown, err)
	}
	return s.Services.SyncEngine.DisplayRecords(), nil
}

func recordTable(records []models.ImageRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TITLE", "FILE", "CREATED", "MODIFIED", "SIZE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, rec := range records {
		modified := ""
		if rec.ModifiedOnDifferentDay() {
			modified = rec.LastModified.Local().Format(listDateLayout)
		}
		t.Row(
			rec.DisplayTitle(),
			rec.File,
			rec.CreationDate.Local().Format(listDateLayout),
			modified,
			strconv.FormatInt(rec.SizeBytes, 10),
		)
	}
	return t.String()
}

func writeJSON(w io.Writer, records []models.ImageRecord) error {
	if records == nil {
		records = []models.ImageRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
