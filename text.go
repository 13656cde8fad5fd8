package twig

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// textSegment is a piece of a laid-out line drawn in one color.
type textSegment struct {
	text  string
	color *Color
	x, w  float64
}

// textLine stores one wrapped line.
type textLine struct {
	segments []textSegment
	width    float64
}

// FixedWidthText displays lines of possibly colored text at a fixed width and
// sizes its height to fit. Set the width as soon as possible, ideally after
// the text and face.
//
// Run colors are only honored when a Markup is set; without one every line
// is drawn in the actor color. Draw reads the runs directly, so the Markup
// only switches run colors on and shapes TypesetText.
type FixedWidthText struct {
	Actor

	// Logger receives the "height not set" warning. May be nil.
	Logger Logger

	face        text.Face
	text        []ColoredString
	markup      Markup
	wrap        bool
	align       TextAlign
	lineSpacing float64

	// Cached layout (unexported)
	typeset       []string
	lines         [][]textLine // wrapped lines per logical line
	invalidHeight bool
	warned        bool
	glyphs        []text.Glyph
}

// NewFixedWidthText creates a text widget. face and lines may be nil and set
// later; markup may be nil.
func NewFixedWidthText(name string, face text.Face, lines []ColoredString, markup Markup) *FixedWidthText {
	t := &FixedWidthText{
		face:          face,
		text:          lines,
		markup:        markup,
		wrap:          true,
		invalidHeight: true,
	}
	actorDefaults(&t.Actor, name)
	t.trySetHeight()
	return t
}

// Face returns the face used for layout and drawing.
func (t *FixedWidthText) Face() text.Face {
	return t.face
}

// SetFace changes the face and invalidates the layout.
func (t *FixedWidthText) SetFace(face text.Face) {
	t.face = face
	t.invalidateHeight()
	t.trySetHeight()
}

// Text returns the displayed lines.
func (t *FixedWidthText) Text() []ColoredString {
	return t.text
}

// SetText replaces the displayed lines. Each line after the first starts on
// a new line.
func (t *FixedWidthText) SetText(lines []ColoredString) {
	t.text = lines
	t.invalidateTypesetText()
	t.invalidateHeight()
	t.trySetHeight()
}

// AddText appends a line. Panics if line is nil.
func (t *FixedWidthText) AddText(line ColoredString) {
	if line == nil {
		panic("twig: cannot add nil text")
	}
	t.text = append(t.text, line)
	t.invalidateTypesetText()
	t.invalidateHeight()
	t.trySetHeight()
}

// SetWrap enables or disables wrapping at the width.
func (t *FixedWidthText) SetWrap(wrap bool) {
	if t.wrap != wrap {
		t.wrap = wrap
		t.invalidateHeight()
		t.trySetHeight()
	}
}

// SetAlign sets the horizontal alignment within the width.
func (t *FixedWidthText) SetAlign(align TextAlign) {
	if t.align != align {
		t.align = align
		t.invalidateHeight()
		t.trySetHeight()
	}
}

// SetLineSpacing overrides the distance between lines. 0 uses the face
// metrics.
func (t *FixedWidthText) SetLineSpacing(spacing float64) {
	if t.lineSpacing != spacing {
		t.lineSpacing = spacing
		t.invalidateHeight()
		t.trySetHeight()
	}
}

// SetWidth sets the width and recomputes the height.
func (t *FixedWidthText) SetWidth(w float64) {
	if t.Width != w {
		t.Width = w
		t.invalidateHeight()
	}
	t.trySetHeight()
}

// SetSize sets the width; the height is always computed from the text.
func (t *FixedWidthText) SetSize(w, _ float64) {
	t.SetWidth(w)
}

// PrefSize returns the width and the computed height.
func (t *FixedWidthText) PrefSize() (w, h float64) {
	t.trySetHeight()
	return t.Width, t.Height
}

// HeightValid reports whether the height reflects the current text, face and
// width.
func (t *FixedWidthText) HeightValid() bool {
	return !t.invalidHeight
}

// TypesetText returns each line as a string, with markup when a Markup is
// set. The result is cached until the text changes. Draw does not use it.
func (t *FixedWidthText) TypesetText() []string {
	if t.typeset == nil {
		t.typeset = make([]string, len(t.text))
		for i, cs := range t.text {
			if t.markup == nil {
				t.typeset[i] = cs.String()
			} else {
				t.typeset[i] = t.markup.Present(cs)
			}
		}
	}
	return t.typeset
}

// Draw draws every line top to bottom. Panics when there is text but no face.
func (t *FixedWidthText) Draw(b *Batch, parentAlpha float64) {
	if t.text == nil || !t.Visible {
		return
	}
	if t.face == nil {
		panic("twig: the face must be set when drawing a FixedWidthText")
	}
	if !t.trySetHeight() {
		if !t.warned {
			t.warned = true
			logf(t.Logger, "height of %q is not set when drawing a FixedWidthText, this isn't good", t.Name)
		}
		// t.lines may describe text that has since changed.
		return
	}

	base := t.Color.WithAlpha(parentAlpha)
	prev := b.Color()
	lh := t.lineHeight()
	y := t.Y
	for _, wrapped := range t.lines {
		for _, line := range wrapped {
			for _, seg := range line.segments {
				c := base
				if t.markup != nil && seg.color != nil {
					c = seg.color.WithAlpha(parentAlpha)
				}
				b.SetColor(c)
				t.drawSegment(b, seg, t.X, y)
			}
			y += lh
		}
	}
	b.SetColor(prev)
}

func (t *FixedWidthText) drawSegment(b *Batch, seg textSegment, x, y float64) {
	t.glyphs = text.AppendGlyphs(t.glyphs[:0], seg.text, t.face, &text.LayoutOptions{})
	for _, g := range t.glyphs {
		if g.Image == nil {
			continue
		}
		gb := g.Image.Bounds()
		b.Draw(g.Image, x+seg.x+g.X, y+g.Y, float64(gb.Dx()), float64(gb.Dy()))
	}
}

func (t *FixedWidthText) lineHeight() float64 {
	if t.lineSpacing > 0 {
		return t.lineSpacing
	}
	if t.face == nil {
		return 0
	}
	m := t.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func (t *FixedWidthText) invalidateHeight() {
	t.invalidHeight = true
}

func (t *FixedWidthText) invalidateTypesetText() {
	t.typeset = nil
}

// trySetHeight lays out the text and sets the height. It reports whether the
// height could be set; it cannot without text, a face, or a width.
func (t *FixedWidthText) trySetHeight() bool {
	if !t.invalidHeight {
		return true
	}
	if t.text == nil || t.face == nil || t.Width == 0 {
		return false
	}

	lh := t.lineHeight()
	t.lines = t.lines[:0]
	var h float64
	for _, cs := range t.text {
		wrapped := layoutColored(cs, t.face, t.Width, t.wrap, t.align)
		t.lines = append(t.lines, wrapped)
		h += float64(len(wrapped)) * lh
	}

	t.invalidHeight = false
	t.Height = h
	return true
}

// layoutColored wraps cs into lines no wider than width, breaking at spaces.
// A word wider than width is kept whole on its own line. Newlines force a
// break. Trailing spaces are dropped. The result has at least one line.
func layoutColored(cs ColoredString, face text.Face, width float64, wrap bool, align TextAlign) []textLine {
	var (
		lines  []textLine
		cur    textLine
		word   []textSegment
		wordW  float64
		space  []textSegment
		spaceW float64
	)

	flushWord := func() {
		if len(word) == 0 {
			return
		}
		if wrap && width > 0 && len(cur.segments) > 0 && cur.width+spaceW+wordW > width {
			lines = append(lines, cur)
			cur = textLine{}
			space, spaceW = space[:0], 0
		}
		for _, s := range space {
			s.x = cur.width
			cur.width += s.w
			cur.segments = append(cur.segments, s)
		}
		for _, s := range word {
			s.x = cur.width
			cur.width += s.w
			cur.segments = append(cur.segments, s)
		}
		space, spaceW = space[:0], 0
		word, wordW = word[:0], 0
	}

	for _, r := range cs {
		s := r.Text
		for len(s) > 0 {
			switch s[0] {
			case '\n':
				flushWord()
				lines = append(lines, cur)
				cur = textLine{}
				space, spaceW = space[:0], 0
				s = s[1:]
			case ' ', '\t':
				flushWord()
				n := len(s) - len(strings.TrimLeft(s, " \t"))
				seg := textSegment{text: s[:n], color: r.Color, w: text.Advance(s[:n], face)}
				space = append(space, seg)
				spaceW += seg.w
				s = s[n:]
			default:
				n := strings.IndexAny(s, " \t\n")
				if n < 0 {
					n = len(s)
				}
				seg := textSegment{text: s[:n], color: r.Color, w: text.Advance(s[:n], face)}
				word = append(word, seg)
				wordW += seg.w
				s = s[n:]
			}
		}
	}
	flushWord()
	lines = append(lines, cur)

	// Apply alignment. Use width as the reference when set; otherwise fall
	// back to the widest line.
	alignW := width
	if alignW <= 0 {
		for _, l := range lines {
			alignW = max(alignW, l.width)
		}
	}
	for li := range lines {
		line := &lines[li]
		var offsetX float64
		switch align {
		case TextAlignLeft:
		case TextAlignCenter:
			offsetX = (alignW - line.width) / 2
		case TextAlignRight:
			offsetX = alignW - line.width
		}
		if offsetX != 0 {
			for si := range line.segments {
				line.segments[si].x += offsetX
			}
		}
	}
	return lines
}
