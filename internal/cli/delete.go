// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <file>",
		Short: "Delete an image",
		Long: `Looks the image up in a fresh listing and asks for confirmation before
anything is sent to the store.`,
		Example: `  board delete cat.png
  board delete cat.png --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *commandSession) error {
				records, err := refreshedRecords(ctx, s)
				if err != nil {
					return err
				}

				idx := -1
				for i, rec := range records {
					if rec.File == args[0] {
						idx = i
						break
					}
				}
				if idx < 0 {
					return fmt.Errorf("%w: %s", errImageNotFound, args[0])
				}

				confirm := s.Services.MutationService.RequestDelete(records[idx])
				if !yes {
					ok, err := ask(cmd.InOrStdin(), cmd.OutOrStdout(), confirm.Prompt())
					if err != nil {
						confirm.Cancel()
						return err
					}
					if !ok {
						confirm.Cancel()
						_, err = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
						return err
					}
				}

				_, err = confirm.Confirm(ctx)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation question")

	return cmd
}

// ask prints prompt and reads one answer line. Only y and yes agree; an
// empty input or end of input declines.
func ask(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s\n[y/N] ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
