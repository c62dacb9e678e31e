package aetherbox

import (
	"fmt"

	"github.com/aetherbox/aetherbox/gui"
)

// LinkDescription is a URL shown on the Info page.
type LinkDescription struct {
	URL         string
	Description string
}

// InfoSection draws the Info category: plugin identity, commands and links.
type InfoSection struct {
	Name     string
	Version  string
	Commands func() []CommandInfo
	Links    []LinkDescription
}

// Draw implements Section.
func (i *InfoSection) Draw(s Surface) error {
	s.Text(i.Name)
	if i.Version != "" {
		s.TextDisabled("Version " + i.Version)
	}

	if i.Commands != nil {
		if cmds := i.Commands(); len(cmds) > 0 {
			s.Spacing(s.ItemSpacing())
			s.Separator()
			s.Text("Commands")
			for _, c := range cmds {
				s.TextWrappedColored(fmt.Sprintf("%s  %s", c.Name, c.Help), gui.ColorWhite, 0)
			}
		}
	}

	if len(i.Links) > 0 {
		s.Spacing(s.ItemSpacing())
		s.Separator()
		s.Text("Links")
		for _, l := range i.Links {
			s.Text(l.URL)
			if l.Description != "" {
				if s.ItemHovered() {
					s.Tooltip(l.Description)
				}
				s.TextDisabled(l.Description)
			}
		}
	}
	return nil
}
