// Package assembler interpolates module metadata and rendered declaration
// sections into the SIMPL+ module template. It performs no validation of the
// declarations it receives.
package assembler

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/goliatone/go-simplgen/pkg/render/template"
	"github.com/goliatone/go-simplgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-simplgen/pkg/simpl"
)

// DateLayout formats the generation date in the module header.
const DateLayout = "2006-01-02"

// DefaultTemplate names the embedded module template.
const DefaultTemplate = "module.usp"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded module templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithRenderer swaps the template engine.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(a *Assembler) {
		if renderer != nil {
			a.renderer = renderer
		}
	}
}

// WithTemplateDir lets templates on disk override the embedded ones.
func WithTemplateDir(dir string) Option {
	return func(a *Assembler) {
		a.templateDir = dir
	}
}

// WithTemplate selects the template rendered by Assemble.
func WithTemplate(name string) Option {
	return func(a *Assembler) {
		if name != "" {
			a.templateName = name
		}
	}
}

// WithClock overrides the source of the generation date.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// Assembler renders complete module documents.
type Assembler struct {
	renderer     template.TemplateRenderer
	templateDir  string
	templateName string
	now          func() time.Time
}

// New constructs an Assembler. Without WithRenderer it builds a pongo2 engine
// over the embedded templates (and the template dir, when set).
func New(options ...Option) (*Assembler, error) {
	a := &Assembler{
		templateName: DefaultTemplate,
		now:          time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	if a.renderer == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
		if a.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(a.templateDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("assembler: template engine: %w", err)
		}
		a.renderer = engine
	}
	return a, nil
}

// Assemble renders the module document. The date is taken from the clock at
// call time; everything else is a pure function of the arguments.
func (a *Assembler) Assemble(meta Metadata, inputs, outputs, params simpl.Section) (string, error) {
	if a == nil || a.renderer == nil {
		return "", errors.New("assembler: not initialised")
	}
	meta = meta.Normalize()

	data := map[string]any{
		"module_name": meta.ModuleName,
		"symbol_name": meta.SymbolName,
		"category":    meta.Category,
		"author":      meta.Author,
		"description": meta.Description,
		"version":     meta.Version,
		"date":        a.now().Format(DateLayout),
		"inputs":      inputs.Render(),
		"outputs":     outputs.Render(),
		"parameters":  params.Render(),
	}

	text, err := a.renderer.RenderTemplate(a.templateName, data)
	if err != nil {
		return "", fmt.Errorf("assembler: render %s: %w", a.templateName, err)
	}
	return text, nil
}

// AssembleSections is Assemble over a Sections bundle.
func (a *Assembler) AssembleSections(meta Metadata, sections simpl.Sections) (string, error) {
	return a.Assemble(meta, sections.Inputs, sections.Outputs, sections.Parameters)
}
