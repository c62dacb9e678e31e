package aetherbox

import (
	"fmt"

	"github.com/aetherbox/aetherbox/config"
)

// SettingsSection draws the Settings category. Each change is saved
// immediately.
type SettingsSection struct {
	Config ConfigStore
}

// Draw implements Section.
func (p *SettingsSection) Draw(s Surface) error {
	cfg := p.Config.Config()

	showTooltips := cfg.ShowTooltips
	if s.Checkbox("Show tooltips", &showTooltips) {
		if err := p.Config.Update(func(c *config.Config) { c.ShowTooltips = showTooltips }); err != nil {
			return fmt.Errorf("save show tooltips: %w", err)
		}
	}

	openOnStart := cfg.OpenOnStart
	if s.Checkbox("Open on start", &openOnStart) {
		if err := p.Config.Update(func(c *config.Config) { c.OpenOnStart = openOnStart }); err != nil {
			return fmt.Errorf("save open on start: %w", err)
		}
	}

	s.Spacing(s.ItemSpacing())
	s.TextDisabled(fmt.Sprintf("UI scale %.2f", cfg.UIScale))
	return nil
}
