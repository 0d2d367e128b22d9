// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPath = iota
	fieldTitle
	fieldDate
	fieldCount
)

type uploadForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	err        string

	// loadedPath is the path whose suggested date filled the date field.
	loadedPath string
}

func newUploadForm(maxTitle int, now time.Time) uploadForm {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldPath] = textinput.New()
	inputs[fieldPath].Prompt = "File:    "
	inputs[fieldPath].Placeholder = "path/to/drawing.png"

	inputs[fieldTitle] = textinput.New()
	inputs[fieldTitle].Prompt = "Title:   "
	inputs[fieldTitle].Placeholder = "something creative.."
	if maxTitle > 0 {
		// leave room past the limit so the validator can report it
		inputs[fieldTitle].CharLimit = maxTitle + 1
	}

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Prompt = "Created: "
	inputs[fieldDate].Placeholder = service.CreationDateLayout
	inputs[fieldDate].SetValue(now.Format(service.CreationDateLayout))

	f := uploadForm{inputs: inputs}
	f.inputs[fieldPath].Focus()
	return f
}

func (f *uploadForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// move shifts focus by delta, wrapping around, and returns the blink
// command of the newly focused input.
func (f *uploadForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *uploadForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// applySuggestedDate fills the date field from a freshly loaded file.
func (f *uploadForm) applySuggestedDate(path string, file service.UploadFile) {
	if path != f.value(fieldPath) {
		return
	}
	f.loadedPath = path
	f.inputs[fieldDate].SetValue(file.SuggestedDate.Format(service.CreationDateLayout))
}

// payload reads the file and builds the upload. An empty date is passed on
// as zero so validation reports it as missing.
func (f *uploadForm) payload() (models.UploadPayload, error) {
	file, err := service.LoadUploadFile(f.value(fieldPath))
	if err != nil {
		return models.UploadPayload{}, err
	}

	var created time.Time
	if raw := f.value(fieldDate); raw != "" {
		created, err = service.ParseCreationDate(raw)
		if err != nil {
			return models.UploadPayload{}, err
		}
	}

	return models.UploadPayload{
		File:         file.Blob,
		Title:        f.value(fieldTitle),
		CreationDate: created,
	}, nil
}

func (f uploadForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload"))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.submitting {
		b.WriteString(helpStyle.Render("uploading..."))
	} else {
		b.WriteString(helpStyle.Render("tab next  enter next/submit  esc cancel"))
	}
	return overlayBoxStyle.Render(b.String())
}
