package aetherbox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSectionTogglesAndSaves(t *testing.T) {
	cfg := newFakeConfig()
	section := &SettingsSection{Config: cfg}

	s := newFakeSurface()
	require.NoError(t, section.Draw(s))
	assert.Equal(t, []string{
		"Checkbox:Show tooltips",
		"Checkbox:Open on start",
		"TextDisabled:UI scale 1.00",
	}, s.calls)
	assert.Zero(t, cfg.updates)

	s = newFakeSurface()
	s.clicks["Show tooltips"] = true
	s.clicks["Open on start"] = true
	require.NoError(t, section.Draw(s))
	assert.False(t, cfg.cfg.ShowTooltips)
	assert.True(t, cfg.cfg.OpenOnStart)
	assert.Equal(t, 2, cfg.updates)
	assert.Equal(t, 2, cfg.saves)
}

func TestSettingsSectionSaveError(t *testing.T) {
	cfg := newFakeConfig()
	cfg.err = errors.New("read-only")
	section := &SettingsSection{Config: cfg}

	s := newFakeSurface()
	s.clicks["Show tooltips"] = true
	err := section.Draw(s)
	assert.ErrorIs(t, err, cfg.err)
	assert.NotContains(t, s.calls, "Checkbox:Open on start")
}

func TestInfoSection(t *testing.T) {
	section := &InfoSection{
		Name:    "AetherBox",
		Version: "1.2.3",
		Commands: func() []CommandInfo {
			return []CommandInfo{{Name: "/atb", Help: "Opens Main Menu"}}
		},
		Links: []LinkDescription{{URL: "https://example.com/aetherbox", Description: "Project page"}},
	}

	s := newFakeSurface()
	s.hovered["https://example.com/aetherbox"] = true
	require.NoError(t, section.Draw(s))

	assert.Equal(t, []string{
		"Text:AetherBox",
		"TextDisabled:Version 1.2.3",
		"Separator",
		"Text:Commands",
		"TextWrapped",
		"Separator",
		"Text:Links",
		"Text:https://example.com/aetherbox",
		"Tooltip:Project page",
		"TextDisabled:Project page",
	}, s.calls)
	require.Len(t, s.wrapped, 1)
	assert.Equal(t, "/atb  Opens Main Menu", s.wrapped[0].Text)
}
