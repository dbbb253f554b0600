package render

import (
	"fmt"
	"strings"
	"time"

	"resume-portal/resume/model"
)

// SectionKind selects how a section body is laid out.
type SectionKind int

const (
	// KindParagraph flows the block as wrapped text.
	KindParagraph SectionKind = iota
	// KindEntries renders headings (company, degree) with their bulleted details.
	KindEntries
	// KindChips packs tokens into rounded labels.
	KindChips
	// KindInline joins tokens on one flowed line.
	KindInline
	// KindTimeline draws a dot per line joined by connectors.
	KindTimeline
	// KindList renders every line as a bullet.
	KindList
)

// Section binds a ResumeData field to a title and layout.
type Section struct {
	Field model.Field
	Title string
	Kind  SectionKind
}

// Column is a vertical flow of sections.
type Column struct {
	X, Width float64
	Sections []Section
	// Anchor names a start y published by the chrome; the row's y is used when unset.
	Anchor string
	Header *HeaderStyle
	Body   *BodyStyle
	Clip   bool
}

// Row is a set of columns flowed side by side; the next row starts below the tallest.
type Row []Column

// BodyStyle is the typography of section bodies.
type BodyStyle struct {
	Font     Font
	Bold     Font
	Italic   Font
	Size     float64
	LineGap  float64
	Text     Color
	Muted    Color
	Accent   Color
	ChipFill Color
	ChipText Color
	Bullet   string
}

// FooterStyle positions the footer line. Width zero spans the page minus 40pt margins.
type FooterStyle struct {
	X, Width  float64
	Font      Font
	Size      float64
	Color     Color
	Rule      bool
	RuleColor Color
}

// Skin is a declarative template: chrome, typography and section order.
type Skin struct {
	Template model.Template
	Body     BodyStyle
	Header   HeaderStyle
	// Chrome draws the fixed decoration and identity block and returns the content top.
	Chrome func(f *Frame) float64
	Rows   []Row
	// TwoColumnRows replaces Rows for the two-column layout; nil means the layout is ignored.
	TwoColumnRows []Row
	Footer        FooterStyle
	SectionGap    float64
}

// Frame is the per-render state handed to chrome callbacks.
type Frame struct {
	Canvas  Canvas
	Data    model.ResumeData
	Info    model.StudentInfo
	Layout  model.Layout
	Now     time.Time
	anchors map[string]float64
}

// SetAnchor publishes a start y for columns that reference name.
func (f *Frame) SetAnchor(name string, y float64) {
	if f.anchors == nil {
		f.anchors = make(map[string]float64)
	}
	f.anchors[name] = y
}

// Draw composes a single page onto f.Canvas in one forward pass.
// Content taller than the page is not moved to a new page.
func (s *Skin) Draw(f *Frame) error {
	c := f.Canvas
	c.AddPage()

	y := 50.0
	if s.Chrome != nil {
		y = s.Chrome(f)
	}

	rows := s.Rows
	if f.Layout == model.LayoutTwoColumn && s.TwoColumnRows != nil {
		rows = s.TwoColumnRows
	}
	for _, row := range rows {
		bottom := y
		for _, col := range row {
			if b := s.flowColumn(f, col, y); b > bottom {
				bottom = b
			}
		}
		y = bottom
	}

	s.drawFooter(f)
	return c.Err()
}

func (s *Skin) flowColumn(f *Frame, col Column, y float64) float64 {
	c := f.Canvas
	if col.Anchor != "" {
		if a, ok := f.anchors[col.Anchor]; ok {
			y = a
		}
	}
	header := s.Header
	if col.Header != nil {
		header = *col.Header
	}
	body := s.Body
	if col.Body != nil {
		body = *col.Body
	}
	if col.Clip {
		c.ClipRect(col.X, 0, col.Width, c.PageSize().Height)
		defer c.ClipEnd()
	}

	for _, sec := range col.Sections {
		text := strings.TrimSpace(f.Data.Get(sec.Field))
		if !hasBody(sec.Kind, text) {
			continue
		}
		y = DrawSectionHeader(c, sec.Title, col.X, y, col.Width, header)
		y = drawSectionBody(c, sec.Kind, text, col.X, y, col.Width, body)
		y += s.SectionGap
	}
	return y
}

// hasBody reports whether text leaves anything to draw once the section kind
// has dropped separators, markers and blank lines.
func hasBody(kind SectionKind, text string) bool {
	if text == "" {
		return false
	}
	switch kind {
	case KindChips, KindInline:
		return len(SplitTokens(text)) > 0
	case KindEntries, KindList, KindTimeline:
		for _, line := range ClassifyLines(text) {
			if line.Kind != LineBlank {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func drawSectionBody(c Canvas, kind SectionKind, text string, x, y, w float64, b BodyStyle) float64 {
	switch kind {
	case KindEntries:
		return drawEntries(c, text, x, y, w, b)
	case KindChips:
		return drawChips(c, SplitTokens(text), x, y, w, b)
	case KindInline:
		return c.Text(strings.Join(SplitTokens(text), "  ·  "), x, y, b.opts(w, b.Font, b.Text))
	case KindTimeline:
		return drawTimeline(c, text, x, y, w, b)
	case KindList:
		return drawList(c, text, x, y, w, b)
	default:
		return c.Text(text, x, y, b.opts(w, b.Font, b.Text))
	}
}

func (b BodyStyle) opts(w float64, font Font, color Color) TextOptions {
	return TextOptions{Width: w, Font: font, Size: b.Size, Color: color, LineGap: b.LineGap}
}

func (b BodyStyle) bullet() string {
	if b.Bullet == "" {
		return "•"
	}
	return b.Bullet
}

// drawEntries renders a heading line in bold, consecutive heading lines (dates,
// roles) as muted italics and bullets with a hanging indent.
func drawEntries(c Canvas, text string, x, y, w float64, b BodyStyle) float64 {
	afterHeading := false
	for _, line := range ClassifyLines(text) {
		switch line.Kind {
		case LineBlank:
			y += b.Size * 0.5
			afterHeading = false
		case LineHeading:
			if afterHeading {
				opts := b.opts(w, b.Italic, b.Muted)
				opts.Size = b.Size - 0.5
				y = c.Text(line.Text, x, y, opts)
			} else {
				opts := b.opts(w, b.Bold, b.Text)
				opts.Size = b.Size + 1
				y = c.Text(line.Text, x, y+1, opts)
			}
			afterHeading = true
		case LineBullet:
			c.Text(b.bullet(), x+4, y, b.opts(10, b.Font, b.Accent))
			y = c.Text(line.Text, x+14, y, b.opts(w-14, b.Font, b.Text))
			afterHeading = false
		}
	}
	return y + 2
}

func drawList(c Canvas, text string, x, y, w float64, b BodyStyle) float64 {
	for _, line := range ClassifyLines(text) {
		if line.Kind == LineBlank {
			y += b.Size * 0.5
			continue
		}
		c.Text(b.bullet(), x+2, y, b.opts(10, b.Font, b.Accent))
		y = c.Text(line.Text, x+12, y, b.opts(w-12, b.Font, b.Text))
	}
	return y + 2
}

func drawChips(c Canvas, tokens []string, x, y, w float64, b BodyStyle) float64 {
	opts := b.opts(0, b.Font, b.ChipText)
	opts.Size = b.Size - 0.5
	measure := func(s string) float64 { return c.TextWidth(s, opts) }
	m := chipMetrics(opts.Size)
	boxes, bottom := PackChips(tokens, x, y, w, measure, m)
	for _, box := range boxes {
		c.RoundedRect(box.X, box.Y, box.W, box.H, box.H/2, b.ChipFill)
		label := opts
		label.Width = box.W - 2*m.PadX
		label.Align = AlignCenter
		c.Text(box.Text, box.X+m.PadX, box.Y+(box.H-opts.Size*1.2)/2, label)
	}
	return bottom + 2
}

func drawTimeline(c Canvas, text string, x, y, w float64, b BodyStyle) float64 {
	var entries []string
	for _, line := range ClassifyLines(text) {
		if line.Kind != LineBlank {
			entries = append(entries, line.Text)
		}
	}
	if len(entries) == 0 {
		return y
	}

	textX := x + 16
	textW := w - 16
	step := b.Size * 1.2 * 1.5
	for _, e := range entries {
		if h := c.TextHeight(e, b.opts(textW, b.Font, b.Text)) + 4; h > step {
			step = h
		}
	}

	dotY := y + b.Size*0.6
	nodes := TimelineLayout(len(entries), x+5, dotY, step)
	for _, n := range nodes {
		if n.HasConnector {
			c.Line(n.Dot.X, n.Dot.Y, n.ConnectorEnd.X, n.ConnectorEnd.Y, 1, b.Muted)
		}
	}
	for i, n := range nodes {
		c.Circle(n.Dot.X, n.Dot.Y, 3.5, b.Accent)
		font := b.Font
		if i == 0 || ClassifyLine(entries[i]).Kind == LineHeading {
			font = b.Bold
		}
		c.Text(entries[i], textX, y+float64(i)*step, b.opts(textW, font, b.Text))
	}
	return y + float64(len(entries))*step
}

func chipMetrics(size float64) ChipMetrics {
	h := size*1.2 + 6
	return ChipMetrics{PadX: 7, Height: h, Gap: 5, RowHeight: h + 5}
}

func (s *Skin) drawFooter(f *Frame) {
	c := f.Canvas
	page := c.PageSize()
	x, w := s.Footer.X, s.Footer.Width
	if w <= 0 {
		x, w = 40, page.Width-80
	}
	y := page.Height - 28
	if s.Footer.Rule {
		c.Line(x, y-6, x+w, y-6, 0.5, s.Footer.RuleColor)
	}
	size := s.Footer.Size
	if size <= 0 {
		size = 7.5
	}
	c.Text(FooterText(f.Info.Name, s.Template, f.Now), x, y, TextOptions{
		Width: w,
		Align: AlignCenter,
		Font:  s.Footer.Font,
		Size:  size,
		Color: s.Footer.Color,
	})
}

// FooterText is the "<name> | <Template> Template | <date>" footer line.
func FooterText(name string, t model.Template, now time.Time) string {
	return fmt.Sprintf("%s | %s Template | %s", name, t.Title(), FormatDate(now))
}

// FormatDate renders t the way the footer prints dates (M/D/YYYY).
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
