package render

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// DocumentInfo is the metadata written into the PDF info dictionary.
type DocumentInfo struct {
	Title   string
	Author  string
	Created time.Time
}

// pdfCanvas implements Canvas on fpdf core fonts. It is not safe for concurrent use;
// every render owns its own instance.
type pdfCanvas struct {
	pdf  *fpdf.Fpdf
	page PageSize
	tr   func(string) string
}

func newPDFCanvas(page PageSize, info DocumentInfo) *pdfCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreator("resume-portal", true)
	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if !info.Created.IsZero() {
		pdf.SetCreationDate(info.Created)
	}
	return &pdfCanvas{
		pdf:  pdf,
		page: page,
		// cp1252 keeps bullets and accented Latin text on the core fonts.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *pdfCanvas) PageSize() PageSize { return c.page }

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) Rect(x, y, w, h float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) RoundedRect(x, y, w, h, r float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
}

func (c *pdfCanvas) Circle(x, y, r float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Circle(x, y, r, "F")
}

func (c *pdfCanvas) Polygon(points []Point, fill Color) {
	if len(points) < 3 {
		return
	}
	pts := make([]fpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Polygon(pts, "F")
}

func (c *pdfCanvas) Line(x1, y1, x2, y2, width float64, stroke Color) {
	c.pdf.SetDrawColor(stroke.R, stroke.G, stroke.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Text(s string, x, y float64, opts TextOptions) float64 {
	c.applyFont(opts)
	if opts.Rotation != 0 {
		origin := Point{X: x, Y: y}
		if opts.Origin != nil {
			origin = *opts.Origin
		}
		c.pdf.TransformBegin()
		// fpdf rotates counter-clockwise.
		c.pdf.TransformRotate(-opts.Rotation, origin.X, origin.Y)
		defer c.pdf.TransformEnd()
	}

	cellH := opts.size() * 1.2
	if opts.CharSpacing > 0 {
		c.spacedLine(s, x, y, cellH, opts)
		return y + opts.LineHeight()
	}

	width := wrapWidth(c, x, opts)
	for _, line := range WrapText(s, width, c.measure) {
		c.pdf.SetXY(x, y)
		c.pdf.CellFormat(width, cellH, c.tr(line), "", 0, alignStr(opts.Align), false, 0, "")
		y += opts.LineHeight()
	}
	return y
}

func (c *pdfCanvas) TextHeight(s string, opts TextOptions) float64 {
	c.applyFont(opts)
	if opts.CharSpacing > 0 {
		return opts.LineHeight()
	}
	lines := WrapText(s, wrapWidth(c, 0, opts), c.measure)
	return float64(len(lines)) * opts.LineHeight()
}

func (c *pdfCanvas) TextWidth(s string, opts TextOptions) float64 {
	c.applyFont(opts)
	w := c.measure(s)
	if n := len([]rune(s)); opts.CharSpacing > 0 && n > 1 {
		w += opts.CharSpacing * float64(n-1)
	}
	return w
}

func (c *pdfCanvas) ClipRect(x, y, w, h float64) { c.pdf.ClipRect(x, y, w, h, false) }

func (c *pdfCanvas) ClipEnd() { c.pdf.ClipEnd() }

func (c *pdfCanvas) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.pdf.SetAlpha(alpha, "Normal")
}

func (c *pdfCanvas) Err() error { return c.pdf.Error() }

// Output finalizes the document and streams it to w.
func (c *pdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

func (c *pdfCanvas) applyFont(opts TextOptions) {
	f := opts.font()
	c.pdf.SetFont(f.Family, f.Style, opts.size())
	col := opts.Color
	if col == (Color{}) {
		col = defaultTextColor
	}
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

// measure uses the font selected by the last applyFont call.
func (c *pdfCanvas) measure(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *pdfCanvas) spacedLine(s string, x, y, cellH float64, opts TextOptions) {
	runes := []rune(s)
	total := c.TextWidth(s, opts)
	cx := x
	if opts.Width > 0 {
		switch opts.Align {
		case AlignCenter:
			cx = x + (opts.Width-total)/2
		case AlignRight:
			cx = x + opts.Width - total
		}
	}
	for _, r := range runes {
		ch := c.tr(string(r))
		w := c.pdf.GetStringWidth(ch)
		c.pdf.SetXY(cx, y)
		c.pdf.CellFormat(w, cellH, ch, "", 0, "L", false, 0, "")
		cx += w + opts.CharSpacing
	}
}

func alignStr(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}

var _ Canvas = (*pdfCanvas)(nil)
