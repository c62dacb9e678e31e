package aetherbox

import (
	"errors"
	"fmt"
)

// ErrNoSection is reported when the active category has nothing to draw.
var ErrNoSection = errors.New("no section for category")

// Section draws the body of a category.
type Section interface {
	Draw(s Surface) error
}

// SectionFunc adapts a function to a Section.
type SectionFunc func(s Surface) error

// Draw calls f(s).
func (f SectionFunc) Draw(s Surface) error { return f(s) }

// Section names reported in SectionResult.
const (
	SectionWindow     = "window"
	SectionHeader     = "header"
	SectionNavigation = "navigation"
	SectionClose      = "close control"
	SectionBody       = "body"
)

// SectionResult is the outcome of drawing one part of the window.
type SectionResult struct {
	Name string
	Err  error
}

// OK reports whether the section drew without failing.
func (r SectionResult) OK() bool { return r.Err == nil }

// isolate runs fn and turns a returned error or a panic into the result.
func isolate(name string, fn func() error) (res SectionResult) {
	res.Name = name
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res.Err = fmt.Errorf("panic: %w", err)
			} else {
				res.Err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	res.Err = fn()
	return res
}

// RenderSection draws the active category's section. Nothing is drawn when
// no category is active.
func RenderSection(s Surface, sel *Selection, categories []Category) SectionResult {
	return isolate(SectionBody, func() error {
		id, ok := sel.Active()
		if !ok {
			return nil
		}
		for _, c := range categories {
			if c.ID != id {
				continue
			}
			if c.Section == nil {
				break
			}
			if err := c.Section.Draw(s); err != nil {
				return fmt.Errorf("%s: %w", c.Label, err)
			}
			return nil
		}
		return fmt.Errorf("category %d: %w", id, ErrNoSection)
	})
}
