// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-image-board/internal/cli"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/charmbracelet/fang"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := fang.Execute(
		context.Background(),
		cli.NewRootCmd(buildInfo),
		fang.WithVersion(buildInfo.String()),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
