package gui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MeasureText returns the size of text rendered at the current font scale.
// Results are cached for the frame; the cache is dropped when the scale changes.
func (ctx *Context) MeasureText(text string) Vec2 {
	if ctx.measureScale != ctx.style.FontScale {
		clear(ctx.textMeasureCache)
		ctx.measureScale = ctx.style.FontScale
	}
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	size := ctx.measureTextScaled(text, ctx.style.FontScale)
	ctx.textMeasureCache[text] = size
	return size
}

// measureTextScaled measures monospace text by cell width.
// Wide runes (CJK and friends) occupy two cells.
func (ctx *Context) measureTextScaled(text string, scale float32) Vec2 {
	cells := runewidth.StringWidth(text)
	return Vec2{
		X: float32(cells) * ctx.style.CharWidth * scale,
		Y: ctx.style.CharHeight * scale,
	}
}

// wrapLines breaks text into lines no wider than maxWidth at the given scale.
// Words wider than a full line are split at rune boundaries.
func (ctx *Context) wrapLines(text string, maxWidth, scale float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	width := func(s string) float32 { return ctx.measureTextScaled(s, scale).X }

	var lines []string
	line := ""
	for _, word := range words {
		if width(word) > maxWidth {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			parts := splitRunes(word, maxWidth, width)
			lines = append(lines, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
			continue
		}

		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if width(candidate) > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitRunes cuts a single word into chunks that each fit maxWidth.
// Always returns at least one chunk.
func splitRunes(word string, maxWidth float32, width func(string) float32) []string {
	var parts []string
	var current []rune
	for _, r := range word {
		next := append(current, r)
		if width(string(next)) > maxWidth && len(current) > 0 {
			parts = append(parts, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}
	return append(parts, string(current))
}

// TruncateText shortens text to fit maxWidth, ending it with "..".
func (ctx *Context) TruncateText(text string, maxWidth float32) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	const suffix = ".."
	target := maxWidth - ctx.MeasureText(suffix).X
	runes := []rune(text)
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return ""
}
