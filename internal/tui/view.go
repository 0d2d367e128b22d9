// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/models"
)

const (
	listHelp    = "↑/↓ move  enter preview  u upload  d delete  c copy url  ctrl+r refresh  v about  q quit"
	offlineHelp = "u upload  ctrl+r refresh  v about  q quit"

	// chromeRows is the height taken by the page frame around the list.
	chromeRows = 8
	// recordRows is the height of one rendered record.
	recordRows = 2
)

func (m galleryModel) View() string {
	var body string
	switch m.mode {
	case modeBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.storeURL)
	case modeUpload:
		body = m.form.View()
	case modeConfirm:
		body = m.confirmView()
	case modePreview:
		body = m.previewView()
	default:
		body = renderPage(m.header(), m.galleryView(), m.helpLine())
	}

	if toasts := m.toastView(); toasts != "" {
		body += "\n" + toasts
	}
	return appStyle.Render(body)
}

func (m galleryModel) header() string {
	status := successStyle.Render("● online")
	if !m.state.ServerReachable {
		status = errorStyle.Render("○ offline")
	}
	return titleStyle.Render("Image board") + "  " + status
}

// galleryView renders exactly one of the three presentation states.
func (m galleryModel) galleryView() string {
	switch {
	case !m.state.ServerReachable:
		return unavailableView(m.state.SecondsUntilNextRefresh)
	case len(m.records) == 0:
		return app.MsgEmptyGallery
	}

	start, end := listWindow(len(m.records), m.idx, m.visibleRecords())

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(recordView(m.records[i], i == m.idx, m.titleWidth()))
	}
	if start > 0 || end < len(m.records) {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.records))))
	}
	return b.String()
}

func (m galleryModel) helpLine() string {
	if !m.state.ServerReachable {
		return offlineHelp
	}
	return listHelp
}

// visibleRecords is how many records fit the terminal; zero means the
// height is unknown and everything is shown.
func (m galleryModel) visibleRecords() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, (m.height-chromeRows)/recordRows)
}

// listWindow returns the [start, end) slice of total items to render so
// that idx stays visible, keeping the cursor centred where possible.
func listWindow(total, idx, capacity int) (int, int) {
	if capacity <= 0 || total <= capacity {
		return 0, total
	}
	idx = min(max(idx, 0), total-1)

	start := idx - capacity/2
	start = min(max(start, 0), total-capacity)
	return start, start + capacity
}

func unavailableView(seconds int) string {
	return errorStyle.Render(app.MsgServerUnavailable) + "\n" +
		fmt.Sprintf(app.MsgRetryCountdown, seconds)
}

func recordView(rec models.ImageRecord, selected bool, width int) string {
	cursor := "  "
	title := fitText(rec.DisplayTitle(), width)
	if selected {
		cursor = "> "
		title = selectedStyle.Render(title)
	} else {
		title = titleStyle.Render(title)
	}

	line := cursor + title + "\n    created: " + formatDate(rec.CreationDate)
	if rec.ModifiedOnDifferentDay() {
		line += "  modified: " + formatDate(rec.LastModified)
	}
	line += "  " + helpStyle.Render(formatSize(rec.SizeBytes))
	return line
}

func (m galleryModel) titleWidth() int {
	if m.width <= 10 {
		return 60
	}
	return m.width - 10
}

func (m galleryModel) confirmView() string {
	if m.confirm == nil {
		return ""
	}
	content := m.confirm.Prompt() + "\n\n" + helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}

func (m galleryModel) previewView() string {
	var content string
	switch {
	case m.preview.loading:
		content = "loading..."
	case m.preview.err != "":
		content = errorStyle.Render(m.preview.err)
	default:
		content = m.preview.view
	}
	return renderPage(titleStyle.Render(m.preview.file), content, "esc: back")
}

func (m galleryModel) toastView() string {
	var lines []string
	for _, t := range m.toaster.active() {
		switch t.kind {
		case toastError:
			lines = append(lines, errorStyle.Render("✕ "+t.text))
		case toastSuccess:
			lines = append(lines, successStyle.Render("✓ "+t.text))
		default:
			lines = append(lines, "• "+t.text)
		}
	}
	return strings.Join(lines, "\n")
}
