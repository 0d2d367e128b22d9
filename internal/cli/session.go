// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-image-board/internal/client"
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// commandSession is a client session opened for one command run.
type commandSession struct {
	*client.Session

	logger *logger.Logger
	closer io.Closer
}

func (s *commandSession) Close() error {
	return s.closer.Close()
}

// openSession loads the configuration from the command's flags and builds a
// session around notifier. Interactive sessions own the terminal, so they
// log only when a log file is configured.
func openSession(cmd *cobra.Command, notifier service.Notifier, interactive bool) (*commandSession, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, closer, err := commandLogger(cmd, cfg, interactive)
	if err != nil {
		return nil, err
	}

	session, err := client.NewSession(cfg, notifier, log)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	return &commandSession{Session: session, logger: log, closer: closer}, nil
}

func commandLogger(cmd *cobra.Command, cfg *config.ClientConfig, interactive bool) (*logger.Logger, io.Closer, error) {
	if cfg.Log.File != "" {
		return logger.NewClientLogger(appRole, cfg.Log.Level, cfg.Log.File)
	}
	if interactive {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing log level: %w", err)
	}
	// one-shot output goes to stdout; keep stderr for warnings unless asked
	if !cmd.Flags().Changed(config.FlagLogLevel) && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	return logger.New(appRole, cmd.ErrOrStderr(), level), io.NopCloser(nil), nil
}

// withSession runs fn with a session that reports to the command's output
// streams and is closed afterwards.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *commandSession) error) error {
	session, err := openSession(cmd, newConsoleNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr()), false)
	if err != nil {
		return err
	}
	defer session.Close()

	return fn(cmd.Context(), session)
}
