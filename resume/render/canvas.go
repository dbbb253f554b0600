package render

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSize is a page geometry in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// A4 is the only page size templates are laid out for.
var A4 = PageSize{Name: "A4", Width: 595, Height: 842}

// Point is a page coordinate; the origin is the top-left corner.
type Point struct {
	X, Y float64
}

// Color is an RGB fill or text color.
type Color struct {
	R, G, B int
}

// Hex parses "#RRGGBB" or "RRGGBB". Invalid input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Font is a core PDF font family plus style ("", "B", "I", "BI").
type Font struct {
	Family string
	Style  string
}

var (
	FontSans         = Font{Family: "Helvetica"}
	FontSansBold     = Font{Family: "Helvetica", Style: "B"}
	FontSansItalic   = Font{Family: "Helvetica", Style: "I"}
	FontSerif        = Font{Family: "Times"}
	FontSerifBold    = Font{Family: "Times", Style: "B"}
	FontSerifItalic  = Font{Family: "Times", Style: "I"}
	FontMono         = Font{Family: "Courier"}
	FontMonoBold     = Font{Family: "Courier", Style: "B"}
	defaultTextColor = Color{R: 17, G: 17, B: 17}
)

// Align is horizontal text alignment inside TextOptions.Width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions configures a Text, TextHeight or TextWidth call.
type TextOptions struct {
	// Width is the wrap width. Zero or less wraps at the right page edge.
	Width float64
	Align Align
	Font  Font
	Size  float64
	Color Color
	// LineGap is extra space added below each wrapped line.
	LineGap float64
	// CharSpacing adds space between glyphs. Spaced text is never wrapped.
	CharSpacing float64
	// Rotation is clockwise degrees around Origin (the text origin when nil).
	Rotation float64
	Origin   *Point
}

// LineHeight is the vertical advance of one line for the given options.
func (o TextOptions) LineHeight() float64 {
	return o.size()*1.2 + o.LineGap
}

func (o TextOptions) size() float64 {
	if o.Size <= 0 {
		return 10
	}
	return o.Size
}

func (o TextOptions) font() Font {
	if o.Font.Family == "" {
		return FontSans
	}
	return o.Font
}

// Canvas is the drawing surface templates compose pages on.
// Text calls return the cursor below the drawn block instead of mutating hidden state.
type Canvas interface {
	PageSize() PageSize
	AddPage()

	Rect(x, y, w, h float64, fill Color)
	RoundedRect(x, y, w, h, r float64, fill Color)
	Circle(x, y, r float64, fill Color)
	Polygon(points []Point, fill Color)
	Line(x1, y1, x2, y2, width float64, stroke Color)

	// Text draws s with its top-left corner at (x, y) and returns the y below the last line.
	Text(s string, x, y float64, opts TextOptions) float64
	TextHeight(s string, opts TextOptions) float64
	TextWidth(s string, opts TextOptions) float64

	ClipRect(x, y, w, h float64)
	ClipEnd()
	// SetAlpha sets fill/text opacity in [0, 1] for subsequent draws.
	SetAlpha(alpha float64)

	// Err reports the first drawing failure.
	Err() error
}

// wrapWidth resolves the effective wrap width for text starting at x.
func wrapWidth(c Canvas, x float64, opts TextOptions) float64 {
	if opts.Width > 0 {
		return opts.Width
	}
	w := c.PageSize().Width - x
	if w < 1 {
		return 1
	}
	return w
}
