package aetherbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aetherbox/aetherbox/gui"
)

func newTestLoader() fakeLoader {
	return fakeLoader{
		HeaderImageName: {tex: 20, size: gui.Vec2{X: 256, Y: 128}},
		CloseImageName:  {tex: 21, size: gui.Vec2{X: 64, Y: 64}},
	}
}

func TestNewPluginRequiresHeader(t *testing.T) {
	loader := newTestLoader()
	delete(loader, HeaderImageName)

	_, err := NewPlugin(newFakeConfig(), loader)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestNewPluginMissingCloseImage(t *testing.T) {
	loader := newTestLoader()
	delete(loader, CloseImageName)
	core, logs := observer.New(zapcore.ErrorLevel)

	p, err := NewPlugin(newFakeConfig(), loader, WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer p.Dispose()

	entries := logs.FilterMessage("image not found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, CloseImageName, entries[0].ContextMap()["image"])

	p.ToggleMainWindow()
	s := newFakeSurface()
	frame := p.Draw(s)
	assert.Equal(t, ModeNormal, frame.Mode)
	assert.NotContains(t, s.calls, "ImageButton")
}

func TestPluginCommandTogglesWindow(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := NewPlugin(newFakeConfig(), newTestLoader(), WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer p.Dispose()

	assert.False(t, p.Window().IsOpen())
	assert.True(t, p.HandleCommand(CommandName))
	assert.True(t, p.Window().IsOpen())

	entries := logs.FilterMessage("/atb -> Mainwindow").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()["open"])

	assert.True(t, p.HandleCommand("/atb"))
	assert.False(t, p.Window().IsOpen())

	assert.False(t, p.HandleCommand("/unknown"))
	assert.Equal(t, []CommandInfo{{Name: "/atb", Help: "Opens Main Menu"}}, p.Commands().Help())
}

func TestPluginDrawsCategories(t *testing.T) {
	p, err := NewPlugin(newFakeConfig(), newTestLoader())
	require.NoError(t, err)
	defer p.Dispose()

	p.ToggleMainWindow()
	s := newFakeSurface()
	s.clicks["Info"] = true
	frame := p.Draw(s)

	assert.Empty(t, frame.Failed())
	assert.Contains(t, s.calls, "Selectable:Info")
	assert.Contains(t, s.calls, "Selectable:Settings")
	assert.Contains(t, s.calls, "Text:"+PluginName)
	assert.Contains(t, s.calls, "TextDisabled:Version "+Version)
}

func TestPluginOpenOnStart(t *testing.T) {
	cfg := newFakeConfig()
	cfg.cfg.OpenOnStart = true

	p, err := NewPlugin(cfg, newTestLoader())
	require.NoError(t, err)
	defer p.Dispose()

	assert.True(t, p.Window().IsOpen())
	assert.Zero(t, cfg.saves)
}

func TestPluginSharedCommandManager(t *testing.T) {
	commands := NewCommandManager()
	require.NoError(t, commands.AddHandler(CommandName, "taken", func(string, string) {}))

	loader := newTestLoader()
	_, err := NewPlugin(newFakeConfig(), loader, WithCommandManager(commands))
	require.Error(t, err)
	assert.Equal(t, 1, loader[HeaderImageName].releases, "images are released when construction fails")
	assert.Equal(t, 1, loader[CloseImageName].releases)
}

func TestPluginDisposeOnce(t *testing.T) {
	commands := NewCommandManager()
	loader := newTestLoader()
	p, err := NewPlugin(newFakeConfig(), loader, WithCommandManager(commands))
	require.NoError(t, err)

	p.Dispose()
	p.Dispose()

	assert.Equal(t, 1, loader[HeaderImageName].releases)
	assert.Equal(t, 1, loader[CloseImageName].releases)
	assert.False(t, commands.Dispatch(CommandName), "command removed on dispose")
}
