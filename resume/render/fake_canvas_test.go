package render

import "unicode/utf8"

type drawnText struct {
	Text string
	X, Y float64
	Opts TextOptions
}

type drawnShape struct {
	Kind string
	X, Y float64
	W, H float64
	Fill Color
}

// recordCanvas is a Canvas that records calls. Glyphs are 0.5*size wide.
type recordCanvas struct {
	page   PageSize
	pages  int
	texts  []drawnText
	shapes []drawnShape
	clips  int
	alpha  []float64
	err    error
}

func newRecordCanvas() *recordCanvas { return &recordCanvas{page: A4} }

func (c *recordCanvas) PageSize() PageSize { return c.page }
func (c *recordCanvas) AddPage()           { c.pages++ }

func (c *recordCanvas) Rect(x, y, w, h float64, fill Color) {
	c.shapes = append(c.shapes, drawnShape{Kind: "rect", X: x, Y: y, W: w, H: h, Fill: fill})
}

func (c *recordCanvas) RoundedRect(x, y, w, h, r float64, fill Color) {
	c.shapes = append(c.shapes, drawnShape{Kind: "rounded", X: x, Y: y, W: w, H: h, Fill: fill})
}

func (c *recordCanvas) Circle(x, y, r float64, fill Color) {
	c.shapes = append(c.shapes, drawnShape{Kind: "circle", X: x, Y: y, W: 2 * r, H: 2 * r, Fill: fill})
}

func (c *recordCanvas) Polygon(points []Point, fill Color) {
	c.shapes = append(c.shapes, drawnShape{Kind: "polygon", Fill: fill})
}

func (c *recordCanvas) Line(x1, y1, x2, y2, width float64, stroke Color) {
	c.shapes = append(c.shapes, drawnShape{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Fill: stroke})
}

func (c *recordCanvas) Text(s string, x, y float64, opts TextOptions) float64 {
	c.texts = append(c.texts, drawnText{Text: s, X: x, Y: y, Opts: opts})
	if opts.CharSpacing > 0 {
		return y + opts.LineHeight()
	}
	lines := WrapText(s, wrapWidth(c, x, opts), c.measure(opts))
	return y + float64(len(lines))*opts.LineHeight()
}

func (c *recordCanvas) TextHeight(s string, opts TextOptions) float64 {
	if opts.CharSpacing > 0 {
		return opts.LineHeight()
	}
	return float64(len(WrapText(s, wrapWidth(c, 0, opts), c.measure(opts)))) * opts.LineHeight()
}

func (c *recordCanvas) TextWidth(s string, opts TextOptions) float64 {
	return c.measure(opts)(s)
}

func (c *recordCanvas) measure(opts TextOptions) func(string) float64 {
	return func(s string) float64 {
		return float64(utf8.RuneCountInString(s)) * opts.size() * 0.5
	}
}

func (c *recordCanvas) ClipRect(x, y, w, h float64) { c.clips++ }
func (c *recordCanvas) ClipEnd()                    { c.clips-- }
func (c *recordCanvas) SetAlpha(a float64)          { c.alpha = append(c.alpha, a) }
func (c *recordCanvas) Err() error                  { return c.err }

func (c *recordCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

func (c *recordCanvas) find(s string) (drawnText, bool) {
	for _, t := range c.texts {
		if t.Text == s {
			return t, true
		}
	}
	return drawnText{}, false
}

var _ Canvas = (*recordCanvas)(nil)
