package render

import (
	"math"
	"strings"
	"unicode/utf8"
)

// WrapText greedily breaks text into lines no wider than width.
// Hard newlines are kept, blank input lines become empty lines and words wider
// than width are split by rune.
func WrapText(text string, width float64, measure func(string) float64) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
				line = ""
			}
			if measure(word) <= width {
				line = word
				continue
			}
			pieces := splitWord(word, width, measure)
			out = append(out, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		out = append(out, line)
	}
	return out
}

func splitWord(word string, width float64, measure func(string) float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		next := current + string(r)
		if current != "" && measure(next) > width {
			pieces = append(pieces, current)
			next = string(r)
		}
		current = next
	}
	return append(pieces, current)
}

// LineKind classifies one line of a free-text block.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineBullet
)

func (k LineKind) String() string {
	switch k {
	case LineHeading:
		return "heading"
	case LineBullet:
		return "bullet"
	default:
		return "blank"
	}
}

// Line is a classified line with its marker stripped.
type Line struct {
	Kind LineKind
	Text string
}

var bulletMarkers = []string{"•", "-", "*", "▪", "◦"}

// ClassifyLine treats any non-blank line without a leading bullet marker as a heading.
func ClassifyLine(raw string) Line {
	t := strings.TrimSpace(raw)
	if t == "" {
		return Line{Kind: LineBlank}
	}
	if stripped, ok := stripBullet(t); ok {
		if stripped == "" {
			return Line{Kind: LineBlank}
		}
		return Line{Kind: LineBullet, Text: stripped}
	}
	return Line{Kind: LineHeading, Text: t}
}

// ClassifyLines classifies every line of block.
func ClassifyLines(block string) []Line {
	raw := strings.Split(block, "\n")
	out := make([]Line, 0, len(raw))
	for _, l := range raw {
		out = append(out, ClassifyLine(l))
	}
	return out
}

func stripBullet(t string) (string, bool) {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(t, m) {
			return strings.TrimSpace(strings.TrimPrefix(t, m)), true
		}
	}
	return t, false
}

// SplitTokens splits a skills-style block on newlines, commas and semicolons.
// Order is preserved; markers and empty tokens are dropped.
func SplitTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimSpace(f)
		if stripped, ok := stripBullet(t); ok {
			t = stripped
		}
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ChipMetrics sizes chips produced by PackChips.
type ChipMetrics struct {
	PadX      float64
	Height    float64
	Gap       float64
	RowHeight float64
}

// ChipBox is a placed chip.
type ChipBox struct {
	Text       string
	X, Y, W, H float64
}

// PackChips places tokens left to right starting at (x, y), wrapping to a new row
// whenever the next chip would cross x+maxWidth. Tokens are never reordered.
// It returns the boxes and the y below the last row.
func PackChips(tokens []string, x, y, maxWidth float64, measure func(string) float64, m ChipMetrics) ([]ChipBox, float64) {
	boxes := make([]ChipBox, 0, len(tokens))
	if len(tokens) == 0 {
		return boxes, y
	}
	cx, cy := x, y
	for _, tok := range tokens {
		w := measure(tok) + 2*m.PadX
		if w > maxWidth {
			w = maxWidth
		}
		if cx > x && cx+w > x+maxWidth {
			cx = x
			cy += m.RowHeight
		}
		boxes = append(boxes, ChipBox{Text: tok, X: cx, Y: cy, W: w, H: m.Height})
		cx += w + m.Gap
	}
	return boxes, cy + m.RowHeight
}

// TimelineNode is one dot of a timeline and the connector leading to the next dot.
type TimelineNode struct {
	Dot          Point
	HasConnector bool
	ConnectorEnd Point
}

// TimelineLayout places n dots step apart below (x, y). The last dot has no connector.
func TimelineLayout(n int, x, y, step float64) []TimelineNode {
	if n <= 0 {
		return nil
	}
	nodes := make([]TimelineNode, n)
	for i := range nodes {
		nodes[i].Dot = Point{X: x, Y: y + float64(i)*step}
		if i < n-1 {
			nodes[i].HasConnector = true
			nodes[i].ConnectorEnd = Point{X: x, Y: y + float64(i+1)*step}
		}
	}
	return nodes
}

// HeaderDecor is the accent drawn with a section title.
type HeaderDecor int

const (
	DecorNone HeaderDecor = iota
	DecorUnderline
	DecorRule
	DecorLeftBar
	DecorDot
	DecorDiamond
)

// HeaderStyle describes how a template draws section titles.
type HeaderStyle struct {
	Font        Font
	Size        float64
	Color       Color
	Accent      Color
	Decor       HeaderDecor
	Align       Align
	Uppercase   bool
	Lowercase   bool
	CharSpacing float64
	Prefix      string
	// After is the space left between the header and the section body.
	After float64
}

// HeaderText applies the style's casing and prefix to title.
func (s HeaderStyle) HeaderText(title string) string {
	switch {
	case s.Uppercase:
		title = strings.ToUpper(title)
	case s.Lowercase:
		title = strings.ToLower(title)
	}
	return s.Prefix + title
}

// DrawSectionHeader draws a section title with its accent and returns the y below it.
func DrawSectionHeader(c Canvas, title string, x, y, w float64, s HeaderStyle) float64 {
	text := s.HeaderText(title)
	tx := x
	mid := y + s.Size*0.6
	switch s.Decor {
	case DecorLeftBar:
		c.Rect(x, y, 4, s.Size*1.2, s.Accent)
		tx = x + 10
	case DecorDot:
		c.Circle(x+4, mid, 3.5, s.Accent)
		tx = x + 14
	}

	opts := TextOptions{
		Width:       w - (tx - x),
		Align:       s.Align,
		Font:        s.Font,
		Size:        s.Size,
		Color:       s.Color,
		CharSpacing: s.CharSpacing,
	}
	bottom := c.Text(text, tx, y, opts)

	switch s.Decor {
	case DecorUnderline:
		barW := math.Min(40, w)
		if s.Align == AlignCenter {
			c.Rect(x+(w-barW)/2, bottom+1, barW, 2, s.Accent)
		} else {
			c.Rect(tx, bottom+1, barW, 2, s.Accent)
		}
		bottom += 5
	case DecorRule:
		c.Line(x, bottom+1, x+w, bottom+1, 0.75, s.Accent)
		bottom += 4
	case DecorDiamond:
		cx := x + w/2
		if s.Align != AlignCenter {
			cx = tx + 4
		}
		cy := bottom + 4
		drawDiamond(c, cx, cy, 3, s.Accent)
		if s.Align == AlignCenter {
			c.Line(cx-40, cy, cx-7, cy, 0.5, s.Accent)
			c.Line(cx+7, cy, cx+40, cy, 0.5, s.Accent)
		}
		bottom += 9
	}
	return bottom + s.After
}

func drawDiamond(c Canvas, cx, cy, r float64, fill Color) {
	c.Polygon([]Point{
		{X: cx, Y: cy - r},
		{X: cx + r, Y: cy},
		{X: cx, Y: cy + r},
		{X: cx - r, Y: cy},
	}, fill)
}

// initials returns up to two uppercase initials of name.
// initials is the first and last name's leading runes.
func initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(fields[0])
	out := []rune{first}
	if len(fields) > 1 {
		last, _ := utf8.DecodeRuneInString(fields[len(fields)-1])
		out = append(out, last)
	}
	return strings.ToUpper(string(out))
}
