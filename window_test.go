package aetherbox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aetherbox/aetherbox/gui"
)

type windowFixture struct {
	win    *MainWindow
	cfg    *fakeConfig
	header *fakeImage
	close  *fakeImage
	logs   *observer.ObservedLogs
}

func bodySection(name string) Section {
	return SectionFunc(func(s Surface) error {
		s.Text("body:" + name)
		return nil
	})
}

func newWindowFixture(t *testing.T, opts ...WindowOption) windowFixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	f := windowFixture{
		cfg:    newFakeConfig(),
		header: &fakeImage{tex: 10, size: gui.Vec2{X: 512, Y: 256}},
		close:  &fakeImage{tex: 11, size: gui.Vec2{X: 64, Y: 64}},
		logs:   logs,
	}
	opts = append([]WindowOption{
		WithWindowLogger(zap.New(core)),
		WithCategory(Category{ID: CategoryInfo, Label: "Info", Description: "About", Section: bodySection("info")}),
		WithCategory(Category{ID: CategorySettings, Label: "Settings", Section: bodySection("settings")}),
	}, opts...)
	f.win = NewMainWindow(f.cfg, f.header, f.close, opts...)
	return f
}

func TestMainWindowClosedDrawsNothing(t *testing.T) {
	f := newWindowFixture(t)
	s := newFakeSurface()

	frame := f.win.Draw(s)
	assert.Equal(t, ModeClosed, frame.Mode)
	assert.Empty(t, frame.Sections)
	assert.Empty(t, s.calls)
}

func TestMainWindowNormalLayout(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)
	s := newFakeSurface()

	frame := f.win.Draw(s)
	assert.Equal(t, ModeNormal, frame.Mode)
	assert.Empty(t, frame.Failed())

	want := []string{
		"BeginColumns",
		"Image",
		"Separator",
		"Selectable:Info",
		"Selectable:Settings",
		"ImageButton",
		"NextColumn",
		"EndColumns",
	}
	if diff := cmp.Diff(want, s.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, float32(150), s.columnsWidth)

	names := make([]string, len(frame.Sections))
	for i, r := range frame.Sections {
		names[i] = r.Name
	}
	assert.Equal(t, []string{SectionHeader, SectionNavigation, SectionClose, SectionBody, SectionWindow}, names)

	wantImages := []drawnImage{
		// 512x256 in a 150 column: width-fit, centered at the cursor
		{Tex: 10, Pos: gui.Vec2{X: 8, Y: 28}, Size: gui.Vec2{X: 150, Y: 75}},
		// (150-50)/2 + 9.5, 500-50-4
		{ID: closeButtonID, Tex: 11, Pos: gui.Vec2{X: 59.5, Y: 446}, Size: gui.Vec2{X: 50, Y: 50}},
	}
	if diff := cmp.Diff(wantImages, s.images); diff != "" {
		t.Errorf("images mismatch (-want +got):\n%s", diff)
	}
}

func TestMainWindowScalesNavColumn(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)
	s := newFakeSurface()
	s.scale = 2

	f.win.Draw(s)
	assert.Equal(t, float32(300), s.columnsWidth)

	require.Len(t, s.images, 2)
	// Column 300 wide: header 300x150 capped at 200 height, so unchanged
	assert.Equal(t, gui.Vec2{X: 300, Y: 150}, s.images[0].Size)
	assert.Equal(t, gui.Vec2{X: 100, Y: 100}, s.images[1].Size)
	assert.Equal(t, gui.Vec2{X: 109.5, Y: 396}, s.images[1].Pos)
}

func TestMainWindowCentersNarrowHeader(t *testing.T) {
	f := newWindowFixture(t)
	f.header.size = gui.Vec2{X: 100, Y: 200}
	f.win.SetOpen(true)
	s := newFakeSurface()

	f.win.Draw(s)
	require.NotEmpty(t, s.images)
	// Aspect 0.5 is clamped to 100 high, 50 wide, centered in 150
	assert.Equal(t, gui.Vec2{X: 58, Y: 28}, s.images[0].Pos)
	assert.Equal(t, gui.Vec2{X: 50, Y: 100}, s.images[0].Size)
}

func TestMainWindowDegraded(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)
	f.win.Selection().Toggle(CategoryInfo)
	s := newFakeSurface()
	s.windowPos = gui.Vec2{X: -8, Y: 100}

	frame := f.win.Draw(s)
	assert.Equal(t, ModeDegraded, frame.Mode)
	assert.Equal(t, []string{"TextWrapped"}, s.calls)
	require.Len(t, s.wrapped, 1)
	assert.Equal(t, gui.ColorYellow, s.wrapped[0].Color)
	assert.Equal(t, float32(3), s.wrapped[0].Scale)
	assert.Len(t, s.wrapped[0].Text, len("Move Screen!")*150)

	// No state changes while degraded
	id, ok := f.win.Selection().Active()
	assert.True(t, ok)
	assert.Equal(t, CategoryInfo, id)
	assert.True(t, f.win.IsOpen())
	assert.Zero(t, f.cfg.saves)

	// Multiple viewports allow the window anywhere
	s = newFakeSurface()
	s.windowPos = gui.Vec2{X: -8, Y: 100}
	s.multiViewport = true
	assert.Equal(t, ModeNormal, f.win.Draw(s).Mode)
}

func TestMainWindowLogsModeChanges(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)

	f.win.Draw(newFakeSurface())
	f.win.Draw(newFakeSurface())
	assert.Equal(t, 1, f.logs.FilterMessage("main window mode changed").Len())

	s := newFakeSurface()
	s.windowPos = gui.Vec2{X: -8, Y: 0}
	f.win.Draw(s)
	assert.Equal(t, 2, f.logs.FilterMessage("main window mode changed").Len())
}

func TestMainWindowNavigationSelectsBody(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)

	s := newFakeSurface()
	s.clicks["Info"] = true
	frame := f.win.Draw(s)
	assert.Empty(t, frame.Failed())
	assert.Contains(t, s.calls, "Text:body:info", "click is applied in the same frame")

	// Next frame shows Info selected
	s = newFakeSurface()
	f.win.Draw(s)
	assert.Contains(t, s.calls, "Selectable:Info:selected")
	assert.Contains(t, s.calls, "Text:body:info")

	// Switching clears the old highlight
	s = newFakeSurface()
	s.clicks["Settings"] = true
	f.win.Draw(s)
	s = newFakeSurface()
	f.win.Draw(s)
	assert.Contains(t, s.calls, "Selectable:Info")
	assert.Contains(t, s.calls, "Selectable:Settings:selected")
	assert.Contains(t, s.calls, "Text:body:settings")

	// Clicking the active category empties the body
	s = newFakeSurface()
	s.clicks["Settings"] = true
	f.win.Draw(s)
	s = newFakeSurface()
	f.win.Draw(s)
	assert.NotContains(t, s.calls, "Text:body:settings")
	_, ok := f.win.Selection().Active()
	assert.False(t, ok)
}

func TestMainWindowTooltips(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)

	s := newFakeSurface()
	s.hovered["Info"] = true
	s.hovered["Settings"] = true
	f.win.Draw(s)
	assert.Contains(t, s.calls, "Tooltip:About")
	assert.NotContains(t, s.calls, "Tooltip:", "categories without description get no tooltip")

	f.cfg.cfg.ShowTooltips = false
	s = newFakeSurface()
	s.hovered["Info"] = true
	f.win.Draw(s)
	assert.NotContains(t, s.calls, "Tooltip:About")
}

func TestMainWindowBodyFailureKeepsNavigation(t *testing.T) {
	errBroken := errors.New("broken body")
	f := newWindowFixture(t, WithCategory(Category{
		ID:    2,
		Label: "Broken",
		Section: SectionFunc(func(Surface) error {
			panic(errBroken)
		}),
	}))
	f.win.SetOpen(true)
	f.win.Selection().Toggle(2)

	s := newFakeSurface()
	frame := f.win.Draw(s)
	assert.Equal(t, ModeNormal, frame.Mode)

	failed := frame.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, SectionBody, failed[0].Name)
	assert.ErrorIs(t, failed[0].Err, errBroken)

	// Siblings still drew and the columns were closed
	assert.Contains(t, s.calls, "Selectable:Info")
	assert.Contains(t, s.calls, "Selectable:Broken:selected")
	assert.Contains(t, s.calls, "ImageButton")
	assert.Equal(t, "EndColumns", s.calls[len(s.calls)-1])

	logged := f.logs.FilterMessage("section failed").All()
	require.Len(t, logged, 1)
	assert.Equal(t, zapcore.WarnLevel, logged[0].Level)
	assert.Equal(t, SectionBody, logged[0].ContextMap()["section"])
}

func TestMainWindowNavigationFailureKeepsBody(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)
	f.win.Selection().Toggle(CategorySettings)

	s := newFakeSurface()
	s.panicOn = "Selectable:Info"
	frame := f.win.Draw(s)

	failed := frame.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, SectionNavigation, failed[0].Name)
	assert.Contains(t, s.calls, "Text:body:settings")
	assert.Contains(t, s.calls, "ImageButton", "close control is its own section")
}

func TestMainWindowHeaderFailureKeepsNavigation(t *testing.T) {
	f := newWindowFixture(t)
	f.header.size = gui.Vec2{X: 10, Y: 0}
	f.win.SetOpen(true)

	s := newFakeSurface()
	frame := f.win.Draw(s)

	failed := frame.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, SectionHeader, failed[0].Name)
	assert.Contains(t, s.calls, "Selectable:Info")
}

func TestMainWindowCloseControl(t *testing.T) {
	f := newWindowFixture(t)
	f.win.SetOpen(true)

	s := newFakeSurface()
	s.clicks[closeButtonID] = true
	frame := f.win.Draw(s)
	assert.Empty(t, frame.Failed())
	assert.False(t, f.win.IsOpen())
	assert.Equal(t, 1, f.cfg.saves)
	assert.Equal(t, 1, f.logs.FilterMessage("Settings have been saved.").Len())

	// Later frames and host close requests do not save again
	for i := 0; i < 3; i++ {
		assert.Equal(t, ModeClosed, f.win.Draw(newFakeSurface()).Mode)
	}
	f.win.SetOpen(false)
	assert.Equal(t, 1, f.cfg.saves)
}

func TestMainWindowCloseControlSaveError(t *testing.T) {
	f := newWindowFixture(t)
	f.cfg.err = errors.New("disk full")
	f.win.SetOpen(true)

	s := newFakeSurface()
	s.clicks[closeButtonID] = true
	frame := f.win.Draw(s)

	failed := frame.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, SectionClose, failed[0].Name)
	assert.ErrorIs(t, failed[0].Err, f.cfg.err)
	assert.False(t, f.win.IsOpen())
	assert.Zero(t, f.logs.FilterMessage("Settings have been saved.").Len())
}

func TestMainWindowWithoutCloseImage(t *testing.T) {
	cfg := newFakeConfig()
	win := NewMainWindow(cfg, &fakeImage{tex: 1, size: gui.Vec2{X: 2, Y: 1}}, nil,
		WithCategory(Category{ID: CategoryInfo, Label: "Info", Section: bodySection("info")}))
	win.SetOpen(true)

	s := newFakeSurface()
	frame := win.Draw(s)
	assert.NotContains(t, s.calls, "ImageButton")
	_, ok := frame.Section(SectionClose)
	assert.False(t, ok)
	win.Dispose()
}

func TestMainWindowHostCloseSavesOncePerTransition(t *testing.T) {
	f := newWindowFixture(t)

	f.win.SetOpen(false)
	assert.Zero(t, f.cfg.saves, "closing a closed window is not a transition")

	f.win.SetOpen(true)
	f.win.SetOpen(true)
	assert.Zero(t, f.cfg.saves)

	f.win.SetOpen(false)
	f.win.SetOpen(false)
	assert.Equal(t, 1, f.cfg.saves)

	assert.True(t, f.win.Toggle())
	assert.False(t, f.win.Toggle())
	assert.Equal(t, 2, f.cfg.saves)
}

func TestMainWindowHostCloseSaveErrorLogged(t *testing.T) {
	f := newWindowFixture(t)
	f.cfg.err = errors.New("read-only")
	f.win.SetOpen(true)
	f.win.SetOpen(false)

	assert.False(t, f.win.IsOpen())
	assert.Equal(t, 1, f.logs.FilterMessage("failed to save config on close").Len())
}

func TestMainWindowDisposeOnce(t *testing.T) {
	f := newWindowFixture(t)
	f.win.Dispose()
	f.win.Dispose()

	assert.Equal(t, 1, f.header.releases)
	assert.Equal(t, 1, f.close.releases)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "closed", ModeClosed.String())
	assert.Equal(t, "degraded", ModeDegraded.String())
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestNewWindowFrame(t *testing.T) {
	win := NewWindowFrame(10, 20)
	assert.Equal(t, WindowTitle, win.Title)
	assert.Equal(t, gui.Vec2{X: 10, Y: 20}, win.Position)
	assert.Equal(t, DefaultWindowSize, win.Size)
	assert.Equal(t, MinWindowSize, win.MinSize)
	assert.Equal(t, MaxWindowSize, win.MaxSize)
	assert.True(t, win.CloseOnEscape)
}
