// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-image-board/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, storeURL string) string {
	var b strings.Builder

	b.WriteString("Application: go-image-board\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit())
	if storeURL != "" {
		b.WriteString("\n")
		b.WriteString("Store: ")
		b.WriteString(storeURL)
	}

	return renderPage(titleStyle.Render("ABOUT"), b.String(), "esc: back")
}
