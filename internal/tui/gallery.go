// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-image-board/internal/adapter"
	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is how often the view re-reads the sync snapshot.
const frameInterval = 250 * time.Millisecond

type mode int

const (
	modeList mode = iota
	modeConfirm
	modeUpload
	modePreview
	modeBuildInfo
)

type previewState struct {
	file    string
	view    string
	err     string
	loading bool
}

type galleryModel struct {
	ctx       context.Context
	services  *service.ClientServices
	images    adapter.ImageStoreAdapter
	toaster   *Toaster
	buildInfo models.AppBuildInfo
	storeURL  string
	maxTitle  int
	copyText  func(string) error
	now       func() time.Time

	state   models.SyncState
	records []models.ImageRecord
	idx     int

	mode    mode
	confirm *service.DeleteConfirmation
	form    uploadForm
	preview previewState

	width  int
	height int
}

func (m galleryModel) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// syncSnapshot re-reads the engine state and keeps the cursor on the same
// file when it still exists.
func (m *galleryModel) syncSnapshot() {
	var selected string
	if m.idx >= 0 && m.idx < len(m.records) {
		selected = m.records[m.idx].File
	}

	m.state = m.services.SyncEngine.Snapshot()
	m.records = models.SortForDisplay(m.state.Records)

	m.idx = min(m.idx, len(m.records)-1)
	for i, rec := range m.records {
		if rec.File == selected {
			m.idx = i
			break
		}
	}
	m.idx = max(m.idx, 0)
}

// selected returns the record under the cursor. Records kept through an
// outage are not shown, so nothing is selected while the store is
// unreachable.
func (m galleryModel) selected() (models.ImageRecord, bool) {
	if !m.state.ServerReachable || m.idx < 0 || m.idx >= len(m.records) {
		return models.ImageRecord{}, false
	}
	return m.records[m.idx], true
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.syncSnapshot()
		return m, frameCmd()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case refreshDoneMsg:
		m.syncSnapshot()
		return m, nil
	case deleteDoneMsg:
		m.syncSnapshot()
		return m, nil
	case uploadDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = msg.err.Error()
			return m, nil
		}
		m.mode = modeList
		m.syncSnapshot()
		return m, nil
	case fileLoadedMsg:
		if msg.err == nil && m.mode == modeUpload {
			m.form.applySuggestedDate(msg.path, msg.file)
		}
		return m, nil
	case previewLoadedMsg:
		if m.mode == modePreview && m.preview.file == msg.file {
			m.preview.loading = false
			m.preview.view = msg.view
			if msg.err != nil {
				m.preview.err = msg.err.Error()
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeUpload {
			cmd := m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		m.cancelConfirm()
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	case modeUpload:
		return m.updateUpload(keyMsg)
	case modePreview, modeBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.enter, keys.buildInfo) {
			m.mode = modeList
			return m, nil
		}
		if key.Matches(keyMsg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m galleryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.state.ServerReachable && m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.state.ServerReachable && m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.toaster.Info(app.MsgRefreshing)
		return m, m.refreshCmd()
	case key.Matches(msg, keys.upload):
		m.form = newUploadForm(m.maxTitle, m.now())
		m.mode = modeUpload
	case key.Matches(msg, keys.buildInfo):
		m.mode = modeBuildInfo
	case key.Matches(msg, keys.delete):
		if rec, ok := m.selected(); ok {
			m.confirm = m.services.MutationService.RequestDelete(rec)
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.copy):
		if rec, ok := m.selected(); ok {
			if err := m.copyText(m.images.ImageURL(rec.File)); err != nil {
				m.toaster.Error(err.Error())
			} else {
				m.toaster.Info(app.MsgCopied)
			}
		}
	case key.Matches(msg, keys.enter):
		if rec, ok := m.selected(); ok {
			m.preview = previewState{file: rec.File, loading: true}
			m.mode = modePreview
			return m, m.previewCmd(rec.File)
		}
	}
	return m, nil
}

func (m galleryModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		confirm := m.confirm
		m.confirm = nil
		m.mode = modeList
		return m, m.confirmDeleteCmd(confirm)
	case key.Matches(msg, keys.no, keys.esc):
		m.cancelConfirm()
		m.mode = modeList
	}
	return m, nil
}

func (m *galleryModel) cancelConfirm() {
	if m.confirm != nil {
		m.confirm.Cancel()
		m.confirm = nil
	}
}

func (m galleryModel) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		cmd := m.leaveField(1)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.leaveField(-1)
		return m, cmd
	case key.Matches(msg, keys.enter):
		if m.form.focus < fieldDate {
			cmd := m.leaveField(1)
			return m, cmd
		}
		cmd := m.submitUpload()
		return m, cmd
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// leaveField moves focus and, when leaving a new path, loads the file to
// suggest its creation date.
func (m *galleryModel) leaveField(delta int) tea.Cmd {
	var load tea.Cmd
	if m.form.focus == fieldPath {
		if path := m.form.value(fieldPath); path != "" && path != m.form.loadedPath {
			load = loadFileCmd(path)
		}
	}
	return tea.Batch(m.form.move(delta), load)
}

func (m *galleryModel) submitUpload() tea.Cmd {
	payload, err := m.form.payload()
	if err != nil {
		m.form.err = err.Error()
		m.toaster.Error(err.Error())
		return nil
	}

	m.form.err = ""
	m.form.submitting = true
	ctx, upload := m.ctx, m.services.MutationService.Upload
	return func() tea.Msg {
		return uploadDoneMsg{err: upload(ctx, payload)}
	}
}

func (m galleryModel) refreshCmd() tea.Cmd {
	ctx, engine := m.ctx, m.services.SyncEngine
	return func() tea.Msg {
		return refreshDoneMsg{err: engine.Refresh(ctx)}
	}
}

func (m galleryModel) confirmDeleteCmd(confirm *service.DeleteConfirmation) tea.Cmd {
	if confirm == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		message, err := confirm.Confirm(ctx)
		return deleteDoneMsg{message: message, err: err}
	}
}

func (m galleryModel) previewCmd(file string) tea.Cmd {
	ctx, images := m.ctx, m.images
	cols, rows := previewSize(m.width, m.height)
	return func() tea.Msg {
		data, err := images.FetchImage(ctx, file)
		if err != nil {
			return previewLoadedMsg{file: file, err: err}
		}
		view, err := renderPreview(data, cols, rows)
		return previewLoadedMsg{file: file, view: view, err: err}
	}
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := service.LoadUploadFile(path)
		return fileLoadedMsg{path: path, file: file, err: err}
	}
}
