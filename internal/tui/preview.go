// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

const (
	defaultPreviewWidth  = 64
	defaultPreviewHeight = 24
)

// renderPreview downscales an encoded image to fit cols x rows terminal
// cells and draws it with upper half blocks, two pixel rows per cell. Nearest
// neighbour sampling keeps pixel art crisp.
func renderPreview(data []byte, cols, rows int) (string, error) {
	if cols <= 0 {
		cols = defaultPreviewWidth
	}
	if rows <= 0 {
		rows = defaultPreviewHeight
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	fitted := imaging.Fit(img, cols, rows*2, imaging.NearestNeighbor)
	bounds := fitted.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := fitted.At(x, y)
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = fitted.At(x, y+1)
			}
			b.WriteString(halfBlock(top, bottom))
		}
		if y+2 < bounds.Max.Y {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func halfBlock(top, bottom color.Color) string {
	return lipgloss.NewStyle().
		Foreground(hexColor(top)).
		Background(hexColor(bottom)).
		Render("▀")
}

func hexColor(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
}

// previewSize returns the cell area available for a preview in a window of
// the given size.
func previewSize(width, height int) (int, int) {
	cols, rows := width-8, height-10
	if cols <= 0 || rows <= 0 {
		return defaultPreviewWidth, defaultPreviewHeight
	}
	return cols, rows
}
