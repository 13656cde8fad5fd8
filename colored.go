package twig

import (
	"fmt"
	"strings"
)

// Run is a piece of text drawn in one color. A nil Color means the widget's
// default color.
type Run struct {
	Text  string
	Color *Color
}

// ColoredString is one logical line of rich text made of ordered runs.
type ColoredString []Run

// Plain returns a single-run ColoredString in the default color.
func Plain(text string) ColoredString {
	return ColoredString{{Text: text}}
}

// Colored returns a single-run ColoredString in color c.
func Colored(text string, c Color) ColoredString {
	return ColoredString{{Text: text, Color: &c}}
}

// Append adds a run and returns the extended string. Empty text is dropped.
func (cs ColoredString) Append(text string, c *Color) ColoredString {
	if text == "" {
		return cs
	}
	return append(cs, Run{Text: text, Color: c})
}

// String returns the text without colors.
func (cs ColoredString) String() string {
	var sb strings.Builder
	for _, r := range cs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns the length of the text in bytes.
func (cs ColoredString) Len() int {
	n := 0
	for _, r := range cs {
		n += len(r.Text)
	}
	return n
}

// Markup renders colored text into a single tagged string, as returned by
// FixedWidthText.TypesetText. FixedWidthText draws runs in their own colors
// whenever it has a Markup; what Present returns never reaches the screen.
type Markup interface {
	Present(cs ColoredString) string
}

// HexMarkup renders runs as "[#RRGGBBAA]text[]". Square brackets in the text
// are doubled. Runs without a color are emitted untagged.
type HexMarkup struct{}

// Present implements Markup.
func (HexMarkup) Present(cs ColoredString) string {
	var sb strings.Builder
	for _, r := range cs {
		text := strings.ReplaceAll(r.Text, "[", "[[")
		if r.Color == nil {
			sb.WriteString(text)
			continue
		}
		c := r.Color.toNRGBA()
		fmt.Fprintf(&sb, "[#%02X%02X%02X%02X]%s[]", c.R, c.G, c.B, c.A, text)
	}
	return sb.String()
}

// Greify returns a grey version of input. Each run's color becomes the mean
// of its components, alpha included when affectAlpha is set. Runs without a
// color take nullReplacer, which may itself be nil. Empty runs are dropped.
func Greify(input ColoredString, nullReplacer *Color, affectAlpha bool) ColoredString {
	out := make(ColoredString, 0, len(input))
	for _, r := range input {
		if r.Text == "" {
			continue
		}
		if r.Color == nil {
			out = append(out, Run{Text: r.Text, Color: nullReplacer})
			continue
		}
		c := *r.Color
		var g Color
		if affectAlpha {
			m := (c.R + c.G + c.B + c.A) / 4
			g = Color{m, m, m, m}
		} else {
			m := (c.R + c.G + c.B) / 3
			g = Color{m, m, m, c.A}
		}
		out = append(out, Run{Text: r.Text, Color: &g})
	}
	return out
}

// GreifyLines applies Greify to every line.
func GreifyLines(lines []ColoredString, nullReplacer *Color, affectAlpha bool) []ColoredString {
	out := make([]ColoredString, len(lines))
	for i, l := range lines {
		out[i] = Greify(l, nullReplacer, affectAlpha)
	}
	return out
}
