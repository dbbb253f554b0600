package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"resume-portal/internal/shared/telemetry"
	"resume-portal/resume/model"
)

// ErrSinkUnavailable is returned when the finished document cannot be handed to the sink.
var ErrSinkUnavailable = errors.New("render sink unavailable")

// Result describes a completed render.
type Result struct {
	Template model.Template
	Layout   model.Layout
	Bytes    int64
	// Degraded is set when the template failed and an error document was written instead.
	Degraded  bool
	RenderErr error
}

// Registry maps template names to skins. Aliases resolve to a registered skin
// but are not listed by Names.
type Registry struct {
	mu      sync.RWMutex
	skins   map[model.Template]*Skin
	aliases map[string]model.Template
}

// NewRegistry returns a registry holding the nine built-in skins and the
// newtemplate1/newtemplate2 placeholders, which alias modern.
func NewRegistry() *Registry {
	r := &Registry{
		skins:   make(map[model.Template]*Skin),
		aliases: make(map[string]model.Template),
	}
	for _, s := range []*Skin{
		modernSkin(),
		classicSkin(),
		executiveSkin(),
		minimalistSkin(),
		creativeSkin(),
		technicalSkin(),
		professionalSkin(),
		academicSkin(),
		elegantSkin(),
	} {
		r.Register(s)
	}
	r.Alias("newtemplate1", model.TemplateModern)
	r.Alias("newtemplate2", model.TemplateModern)
	return r
}

// Register adds or replaces the skin for s.Template.
func (r *Registry) Register(s *Skin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skins[s.Template] = s
}

// Alias makes name resolve to target.
func (r *Registry) Alias(name string, target model.Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[model.NormalizeTemplateName(name)] = target
}

// Resolve finds the skin for name, matched case-insensitively after trimming.
// Unknown names resolve to modern with known=false.
func (r *Registry) Resolve(name string) (skin *Skin, known bool) {
	key := model.NormalizeTemplateName(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.skins[model.Template(key)]; ok {
		return s, true
	}
	if target, ok := r.aliases[key]; ok {
		if s, ok := r.skins[target]; ok {
			return s, true
		}
	}
	return r.skins[model.DefaultTemplate], false
}

// Names lists the registered templates in sorted order.
func (r *Registry) Names() []model.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Template, 0, len(r.skins))
	for t := range r.skins {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Renderer draws resumes through a Registry. The zero value uses the
// built-in skins, time.Now and A4.
type Renderer struct {
	Registry *Registry
	Now      func() time.Time
	Page     PageSize
}

// NewRenderer returns a Renderer over the built-in skins.
func NewRenderer() *Renderer {
	return &Renderer{Registry: NewRegistry(), Now: time.Now, Page: A4}
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer

	builtinOnce     sync.Once
	builtinRegistry *Registry
)

// Render draws with the package default renderer.
func Render(ctx context.Context, w io.Writer, data model.ResumeData, info model.StudentInfo, template, layout string) (Result, error) {
	defaultOnce.Do(func() { defaultRenderer = NewRenderer() })
	return defaultRenderer.Render(ctx, w, data, info, template, layout)
}

// Render composes one page for data/info with the named template and writes the
// finished PDF to w. The document is buffered until complete, so w only ever
// receives a whole resume or a whole error document. A template failure yields
// a degraded Result and a nil error; only sink failures and cancellation are
// returned as errors. w is closed afterwards when it implements io.Closer.
func (r *Renderer) Render(ctx context.Context, w io.Writer, data model.ResumeData, info model.StudentInfo, template, layout string) (Result, error) {
	closer, _ := w.(io.Closer)
	defer func() {
		if closer != nil {
			closer.Close()
		}
	}()

	skin, known := r.registry().Resolve(template)
	if !known {
		telemetry.Warn("render.template_fallback", map[string]any{
			"requested": template,
			"template":  string(skin.Template),
		})
	}
	lay := model.ParseLayout(layout)
	res := Result{Template: skin.Template, Layout: lay}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}

	now := r.now()
	data = data.Normalize()
	info = info.Normalize()

	var buf bytes.Buffer
	if err := r.draw(&buf, skin, data, info, lay, now); err != nil {
		telemetry.Error("render.failed", map[string]any{
			"template": string(skin.Template),
			"error":    err.Error(),
		})
		res.Degraded = true
		res.RenderErr = err
		buf.Reset()
		if err := writeErrorDocument(&buf, r.page(), err.Error(), now); err != nil {
			return res, fmt.Errorf("error document: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	n, err := io.Copy(w, &buf)
	res.Bytes = n
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	if closer != nil {
		c := closer
		closer = nil
		if err := c.Close(); err != nil {
			return res, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
		}
	}
	return res, nil
}

// At returns a copy of r whose clock is fixed to now. The copy shares r's registry.
func (r *Renderer) At(now time.Time) *Renderer {
	cp := *r
	cp.Now = func() time.Time { return now }
	return &cp
}

// Resolve reports which template a request for name draws with.
func (r *Renderer) Resolve(name string) (model.Template, bool) {
	skin, known := r.registry().Resolve(name)
	return skin.Template, known
}

// Templates lists the templates r can draw.
func (r *Renderer) Templates() []model.Template {
	return r.registry().Names()
}

func (r *Renderer) registry() *Registry {
	if r.Registry != nil {
		return r.Registry
	}
	builtinOnce.Do(func() { builtinRegistry = NewRegistry() })
	return builtinRegistry
}

func (r *Renderer) draw(w io.Writer, skin *Skin, data model.ResumeData, info model.StudentInfo, layout model.Layout, now time.Time) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("template %s panicked: %v", skin.Template, p)
		}
	}()

	canvas := newPDFCanvas(r.page(), DocumentInfo{
		Title:   fmt.Sprintf("%s - %s Resume", info.Name, skin.Template.Title()),
		Author:  info.Name,
		Created: now,
	})
	frame := &Frame{Canvas: canvas, Data: data, Info: info, Layout: layout, Now: now}
	if err := skin.Draw(frame); err != nil {
		return err
	}
	return canvas.Output(w)
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Renderer) page() PageSize {
	if r.Page.Width > 0 && r.Page.Height > 0 {
		return r.Page
	}
	return A4
}

// ErrorDocument returns a one-page PDF reading "Error Generating Resume" followed by msg.
func ErrorDocument(msg string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeErrorDocument(&buf, A4, msg, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeErrorDocument(w io.Writer, page PageSize, msg string, now time.Time) error {
	c := newPDFCanvas(page, DocumentInfo{Title: "Error Generating Resume", Created: now})
	c.AddPage()
	y := c.Text("Error Generating Resume", 50, 60, TextOptions{Width: page.Width - 100, Font: FontSansBold, Size: 18, Color: Hex("B91C1C")})
	c.Text(msg, 50, y+10, TextOptions{Width: page.Width - 100, Font: FontSans, Size: 11})
	if err := c.Err(); err != nil {
		return err
	}
	return c.Output(w)
}
