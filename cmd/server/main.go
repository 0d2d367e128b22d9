// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/handler"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/server"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetServerConfig(fs)
	if err != nil {
		logger.NewLogger("go-image-board-store").Fatal().Err(err).Msg("error getting configs")
	}

	log, closer, err := logger.NewClientLogger("go-image-board-store", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		logger.NewLogger("go-image-board-store").Fatal().Err(err).Msg("error creating logger")
	}
	defer closer.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Server)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	handlers, err := handler.NewHandlers(storages, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
