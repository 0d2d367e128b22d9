// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-image-board/internal/app"
	"github.com/MKhiriev/go-image-board/internal/config"
	"github.com/MKhiriev/go-image-board/internal/logger"
	"github.com/MKhiriev/go-image-board/internal/mock"
	"github.com/MKhiriev/go-image-board/internal/service"
	"github.com/MKhiriev/go-image-board/internal/store"
	"github.com/MKhiriev/go-image-board/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testGallery struct {
	model     galleryModel
	images    *mock.MockImageStoreAdapter
	syncStore *store.SyncStore
	toaster   *Toaster
	copied    []string
}

func newTestGallery(t *testing.T) *testGallery {
	t.Helper()
	ctrl := gomock.NewController(t)

	tg := &testGallery{
		images:    mock.NewMockImageStoreAdapter(ctrl),
		syncStore: store.NewSyncStore(true),
		toaster:   NewToaster(),
	}

	cfg := config.DefaultClientConfig()
	services := service.NewClientServices(tg.images, tg.syncStore, cfg, tg.toaster, logger.Nop())
	ui := New(services, tg.images, tg.toaster, Options{
		BuildInfo:      models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"),
		StoreURL:       "http://localhost:8090",
		MaxTitleLength: cfg.Upload.MaxTitleLength,
	}, logger.Nop())

	tg.model = ui.newModel(context.Background())
	tg.model.copyText = func(s string) error {
		tg.copied = append(tg.copied, s)
		return nil
	}
	return tg
}

func (tg *testGallery) send(msg tea.Msg) tea.Cmd {
	next, cmd := tg.model.Update(msg)
	tg.model = next.(galleryModel)
	return cmd
}

// run executes cmd and feeds its message back, as the program loop would.
func (tg *testGallery) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	tg.send(cmd())
}

func (tg *testGallery) frame() {
	tg.send(frameMsg(time.Now()))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rec(file, title string, created time.Time) models.ImageRecord {
	r := models.ImageRecord{File: file, SizeBytes: 2048, CreationDate: created, LastModified: created}
	if title != "" {
		r.Title = &title
	}
	return r
}

func toastTexts(tz *Toaster) []string {
	var out []string
	for _, t := range tz.active() {
		out = append(out, t.text)
	}
	return out
}

var (
	older = time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC)
	newer = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

// ── presentation states ──────────────────────────────────────────────────────

func TestView_Unavailable(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ResetCountdown(20)
	tg.syncStore.TickCountdown()
	tg.syncStore.ApplyFailure(1, errors.New("dial tcp: connection refused"))
	tg.frame()

	view := tg.model.View()
	assert.Contains(t, view, app.MsgServerUnavailable)
	assert.Contains(t, view, "Trying again in 19 seconds... (ctrl+r for instant refresh)")
	assert.NotContains(t, view, app.MsgEmptyGallery)
}

func TestView_Empty(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{})
	tg.frame()

	view := tg.model.View()
	assert.Contains(t, view, app.MsgEmptyGallery)
	assert.NotContains(t, view, app.MsgServerUnavailable)
}

func TestView_ListSortedNewestFirst(t *testing.T) {
	tg := newTestGallery(t)
	modified := rec("b.png", "New", newer)
	modified.LastModified = newer.AddDate(0, 0, 3)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Old", older), modified})
	tg.frame()

	view := tg.model.View()
	newIdx := strings.Index(view, "New")
	oldIdx := strings.Index(view, "Old")
	require.NotEqual(t, -1, newIdx)
	require.NotEqual(t, -1, oldIdx)
	assert.Less(t, newIdx, oldIdx)
	assert.Contains(t, view, "created: "+formatDate(newer))
	assert.Contains(t, view, "modified: "+formatDate(modified.LastModified))
	assert.Contains(t, view, "2.0 KiB")
	assert.Equal(t, "b.png", tg.model.records[0].File)
}

func TestView_CursorFollowsFile(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "A", older), rec("b.png", "B", newer)})
	tg.frame()
	tg.send(runes("j"))
	require.Equal(t, "a.png", tg.model.records[tg.model.idx].File)

	tg.syncStore.ApplySuccess(2, []models.ImageRecord{
		rec("a.png", "A", older), rec("b.png", "B", newer), rec("c.png", "C", newer.AddDate(1, 0, 0)),
	})
	tg.frame()

	assert.Equal(t, "a.png", tg.model.records[tg.model.idx].File)
}

func TestView_BuildInfo(t *testing.T) {
	tg := newTestGallery(t)
	tg.send(runes("v"))

	view := tg.model.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "http://localhost:8090")

	tg.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, tg.model.mode)
}

// ── refresh ──────────────────────────────────────────────────────────────────

func TestRefreshKey(t *testing.T) {
	tg := newTestGallery(t)
	tg.images.EXPECT().List(gomock.Any()).Return([]models.ImageRecord{rec("a.png", "A", older)}, nil)

	cmd := tg.send(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Contains(t, toastTexts(tg.toaster), app.MsgRefreshing)

	tg.run(t, cmd)

	assert.True(t, tg.model.state.ServerReachable)
	require.Len(t, tg.model.records, 1)
	assert.Equal(t, 20, tg.model.state.SecondsUntilNextRefresh)
}

func TestRefreshKey_Failure(t *testing.T) {
	tg := newTestGallery(t)
	tg.images.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	tg.run(t, tg.send(tea.KeyMsg{Type: tea.KeyCtrlR}))

	assert.False(t, tg.model.state.ServerReachable)
	assert.Contains(t, toastTexts(tg.toaster), app.MsgFetchFailed)
}

// ── delete ───────────────────────────────────────────────────────────────────

func TestDelete_Confirmed(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Cat", older)})
	tg.frame()

	assert.Nil(t, tg.send(runes("d")))
	require.Equal(t, modeConfirm, tg.model.mode)
	assert.Contains(t, tg.model.View(), app.MsgConfirmDelete)
	assert.Contains(t, tg.model.View(), "Cat")

	gomock.InOrder(
		tg.images.EXPECT().Delete(gomock.Any(), "a.png").Return("deleted", nil),
		tg.images.EXPECT().List(gomock.Any()).Return([]models.ImageRecord{}, nil),
	)

	cmd := tg.send(runes("y"))
	assert.Equal(t, modeList, tg.model.mode)
	tg.run(t, cmd)

	assert.Empty(t, tg.model.records)
	assert.Contains(t, toastTexts(tg.toaster), "deleted")
}

func TestDelete_Declined(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Cat", older)})
	tg.frame()

	tg.send(runes("d"))
	confirm := tg.model.confirm
	require.NotNil(t, confirm)

	assert.Nil(t, tg.send(runes("n")))

	assert.Equal(t, modeList, tg.model.mode)
	assert.True(t, confirm.Closed())
	assert.Len(t, tg.model.records, 1)
}

func TestDelete_NothingSelected(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{})
	tg.frame()

	tg.send(runes("d"))
	assert.Equal(t, modeList, tg.model.mode)
}

func TestOffline_ListActionsIgnored(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "A", older), rec("b.png", "B", newer)})
	tg.syncStore.ApplyFailure(2, errors.New("connection refused"))
	tg.frame()
	require.Len(t, tg.model.records, 2, "records are kept through the outage")

	for _, k := range []tea.KeyMsg{runes("d"), {Type: tea.KeyEnter}, runes("c"), runes("j")} {
		cmd := tg.send(k)
		assert.Nil(t, cmd, "key %q", k.String())
		assert.Equal(t, modeList, tg.model.mode, "key %q", k.String())
	}

	assert.Nil(t, tg.model.confirm)
	assert.Empty(t, tg.copied)
	assert.Equal(t, 0, tg.model.idx)

	view := tg.model.View()
	assert.Contains(t, view, offlineHelp)
	assert.NotContains(t, view, "d delete")
}

func TestOffline_RefreshUploadStillWork(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplyFailure(1, errors.New("connection refused"))
	tg.frame()

	tg.send(runes("u"))
	assert.Equal(t, modeUpload, tg.model.mode)
	tg.send(tea.KeyMsg{Type: tea.KeyEsc})

	tg.images.EXPECT().List(gomock.Any()).Return([]models.ImageRecord{rec("a.png", "A", older)}, nil)
	tg.run(t, tg.send(tea.KeyMsg{Type: tea.KeyCtrlR}))

	assert.True(t, tg.model.state.ServerReachable)
	assert.Contains(t, tg.model.View(), listHelp)
}

// ── scrolling ────────────────────────────────────────────────────────────────

func TestView_ListWindowFollowsCursor(t *testing.T) {
	tg := newTestGallery(t)
	records := make([]models.ImageRecord, 30)
	for i := range records {
		records[i] = rec(fmt.Sprintf("f%02d.png", i), fmt.Sprintf("Title %02d", i), older.AddDate(0, 0, -i))
	}
	tg.syncStore.ApplySuccess(1, records)
	tg.frame()
	tg.send(tea.WindowSizeMsg{Width: 80, Height: chromeRows + 5*recordRows})

	view := tg.model.View()
	assert.Contains(t, view, "Title 00")
	assert.NotContains(t, view, "Title 10")
	assert.Contains(t, view, "1/30")

	for range 20 {
		tg.send(runes("j"))
	}
	view = tg.model.View()
	assert.Contains(t, view, "Title 20")
	assert.NotContains(t, view, "Title 00")
	assert.Contains(t, view, "21/30")
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name                 string
		total, idx, capacity int
		wantStart, wantEnd   int
	}{
		{name: "unknown height", total: 10, idx: 3, capacity: 0, wantStart: 0, wantEnd: 10},
		{name: "fits", total: 3, idx: 2, capacity: 5, wantStart: 0, wantEnd: 3},
		{name: "top", total: 20, idx: 0, capacity: 5, wantStart: 0, wantEnd: 5},
		{name: "middle", total: 20, idx: 10, capacity: 5, wantStart: 8, wantEnd: 13},
		{name: "bottom", total: 20, idx: 19, capacity: 5, wantStart: 15, wantEnd: 20},
		{name: "cursor past end", total: 20, idx: 40, capacity: 5, wantStart: 15, wantEnd: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := listWindow(tt.total, tt.idx, tt.capacity)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

// ── copy ─────────────────────────────────────────────────────────────────────

func TestCopyURL(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Cat", older)})
	tg.frame()
	tg.images.EXPECT().ImageURL("a.png").Return("http://localhost:8090/image/a.png")

	tg.send(runes("c"))

	assert.Equal(t, []string{"http://localhost:8090/image/a.png"}, tg.copied)
	assert.Contains(t, toastTexts(tg.toaster), app.MsgCopied)
}

// ── upload ───────────────────────────────────────────────────────────────────

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range 4 {
		img.Set(i, i, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "drawing.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func fillUploadForm(tg *testGallery, path, title, date string) {
	tg.model.form.inputs[fieldPath].SetValue(path)
	tg.model.form.inputs[fieldTitle].SetValue(title)
	tg.model.form.inputs[fieldDate].SetValue(date)
	tg.model.form.inputs[tg.model.form.focus].Blur()
	tg.model.form.focus = fieldDate
}

func TestUpload_Success(t *testing.T) {
	tg := newTestGallery(t)
	path := writeTestImage(t)

	tg.send(runes("u"))
	require.Equal(t, modeUpload, tg.model.mode)
	fillUploadForm(tg, path, "Sketch", "2024-03-05")

	gomock.InOrder(
		tg.images.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.UploadPayload) error {
				assert.Equal(t, "drawing.png", p.File.Name)
				assert.Equal(t, "Sketch", p.Title)
				assert.Equal(t, 2024, p.CreationDate.Year())
				return nil
			}),
		tg.images.EXPECT().List(gomock.Any()).Return([]models.ImageRecord{rec("drawing.png", "Sketch", older)}, nil),
	)

	cmd := tg.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, tg.model.form.submitting)
	tg.run(t, cmd)

	assert.Equal(t, modeList, tg.model.mode)
	assert.Len(t, tg.model.records, 1)
	assert.Contains(t, toastTexts(tg.toaster), app.MsgUploaded)
}

func TestUpload_RejectedLocallyKeepsForm(t *testing.T) {
	tg := newTestGallery(t)
	path := writeTestImage(t)

	tg.send(runes("u"))
	fillUploadForm(tg, path, "", "2024-03-05")

	tg.run(t, tg.send(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, modeUpload, tg.model.mode)
	assert.NotEmpty(t, tg.model.form.err)
	assert.NotEmpty(t, toastTexts(tg.toaster))
}

func TestUpload_MissingFile(t *testing.T) {
	tg := newTestGallery(t)

	tg.send(runes("u"))
	fillUploadForm(tg, filepath.Join(t.TempDir(), "nope.png"), "T", "2024-03-05")

	assert.Nil(t, tg.send(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, modeUpload, tg.model.mode)
	assert.NotEmpty(t, tg.model.form.err)
}

func TestUpload_PathSuggestsDate(t *testing.T) {
	tg := newTestGallery(t)
	path := writeTestImage(t)
	modTime := time.Date(2021, 8, 9, 10, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	tg.send(runes("u"))
	tg.model.form.inputs[fieldPath].SetValue(path)

	cmd := tg.send(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	file, err := service.LoadUploadFile(path)
	require.NoError(t, err)
	tg.send(fileLoadedMsg{path: path, file: file})

	assert.Equal(t, fieldTitle, tg.model.form.focus)
	assert.Equal(t, "2021-08-09", tg.model.form.value(fieldDate))
}

func TestUpload_EscCancels(t *testing.T) {
	tg := newTestGallery(t)
	tg.send(runes("u"))
	tg.send(runes("q"))
	assert.Equal(t, "q", tg.model.form.value(fieldPath), "keys type into the form")

	tg.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, tg.model.mode)
}

// ── preview ──────────────────────────────────────────────────────────────────

func TestPreview(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Cat", older)})
	tg.frame()

	data, err := os.ReadFile(writeTestImage(t))
	require.NoError(t, err)
	tg.images.EXPECT().FetchImage(gomock.Any(), "a.png").Return(data, nil)

	cmd := tg.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modePreview, tg.model.mode)
	assert.True(t, tg.model.preview.loading)
	tg.run(t, cmd)

	assert.False(t, tg.model.preview.loading)
	assert.Empty(t, tg.model.preview.err)
	assert.Contains(t, tg.model.View(), "▀")

	tg.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, tg.model.mode)
}

func TestRenderPreview(t *testing.T) {
	data, err := os.ReadFile(writeTestImage(t))
	require.NoError(t, err)

	view, err := renderPreview(data, 4, 2)
	require.NoError(t, err)
	assert.Len(t, strings.Split(view, "\n"), 2, "4 pixel rows fold into 2 cell rows")
	assert.Equal(t, 8, strings.Count(view, "▀"))

	_, err = renderPreview([]byte("not an image"), 4, 2)
	assert.Error(t, err)
}

// ── quit ─────────────────────────────────────────────────────────────────────

func TestQuit_CancelsOpenConfirmation(t *testing.T) {
	tg := newTestGallery(t)
	tg.syncStore.ApplySuccess(1, []models.ImageRecord{rec("a.png", "Cat", older)})
	tg.frame()
	tg.send(runes("d"))
	confirm := tg.model.confirm

	cmd := tg.send(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, confirm.Closed())
}
