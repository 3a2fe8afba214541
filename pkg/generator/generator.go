package generator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/collector"
	"github.com/goliatone/go-simplgen/pkg/definition"
	"github.com/goliatone/go-simplgen/pkg/output"
	"github.com/goliatone/go-simplgen/pkg/prompt"
	"github.com/goliatone/go-simplgen/pkg/simpl"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithPromptDriver injects the driver used for interactive sessions.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(g *Generator) {
		g.driver = driver
	}
}

// WithAssembler injects a custom document assembler.
func WithAssembler(a *assembler.Assembler) Option {
	return func(g *Generator) {
		g.assembler = a
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithBaseDir sets the directory output paths resolve against. Empty means
// the current working directory.
func WithBaseDir(dir string) Option {
	return func(g *Generator) {
		g.baseDir = dir
	}
}

// WithLayout selects nested (simplplus/) or flat output.
func WithLayout(layout output.Layout) Option {
	return func(g *Generator) {
		g.layout = layout
	}
}

// Generator coordinates one generation run.
type Generator struct {
	driver    prompt.Driver
	assembler *assembler.Assembler
	logger    *zap.Logger
	baseDir   string
	layout    output.Layout
}

// New constructs a Generator. Missing collaborators get the built-in
// defaults: the survey prompt driver and the embedded module template.
func New(options ...Option) (*Generator, error) {
	g := &Generator{
		logger: zap.NewNop(),
		layout: output.LayoutNested,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	if g.driver == nil {
		g.driver = prompt.NewSurvey()
	}
	if g.assembler == nil {
		a, err := assembler.New()
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		g.assembler = a
	}
	return g, nil
}

// Request describes one generation run.
type Request struct {
	// Definition replaces the interactive session when set.
	Definition *definition.Definition

	// DryRun assembles the document and resolves the path without writing.
	DryRun bool
}

// Result captures what a run produced.
type Result struct {
	Path     string
	Metadata assembler.Metadata
	Sections simpl.Sections
	Document string
	Written  bool
}

// Definition returns the run as a replayable definition.
func (r Result) Definition() definition.Definition {
	return definition.FromSession(r.Metadata, r.Sections)
}

// Generate runs the pipeline: gather metadata and sections, assemble the
// document, resolve the output path and write the file.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}

	var (
		meta     assembler.Metadata
		sections simpl.Sections
		err      error
	)
	if req.Definition != nil {
		meta, sections, err = req.Definition.Resolve()
	} else {
		meta, sections, err = g.collect(ctx)
	}
	if err != nil {
		return Result{}, err
	}

	result, err := g.build(meta, sections)
	if err != nil {
		return result, err
	}
	if req.DryRun {
		return result, nil
	}

	if err := output.Write(result.Path, result.Document); err != nil {
		return result, fmt.Errorf("generator: %w", err)
	}
	result.Written = true
	g.logger.Info("module written",
		zap.String("path", result.Path),
		zap.Int("bytes", len(result.Document)),
	)
	return result, nil
}

func (g *Generator) collect(ctx context.Context) (assembler.Metadata, simpl.Sections, error) {
	c, err := collector.New(g.driver, collector.WithLogger(g.logger))
	if err != nil {
		return assembler.Metadata{}, simpl.Sections{}, fmt.Errorf("generator: %w", err)
	}

	meta, err := c.CollectMetadata(ctx)
	if err != nil {
		return meta, simpl.Sections{}, fmt.Errorf("generator: metadata: %w", err)
	}
	sections, err := c.CollectAll(ctx)
	if err != nil {
		return meta, sections, fmt.Errorf("generator: %w", err)
	}
	return meta, sections, nil
}

func (g *Generator) build(meta assembler.Metadata, sections simpl.Sections) (Result, error) {
	meta = meta.Normalize()
	result := Result{Metadata: meta, Sections: sections}

	doc, err := g.assembler.AssembleSections(meta, sections)
	if err != nil {
		return result, fmt.Errorf("generator: %w", err)
	}
	result.Document = doc

	path, err := output.Resolve(g.baseDir, meta.FileName, g.layout)
	if err != nil {
		return result, fmt.Errorf("generator: %w", err)
	}
	result.Path = path

	g.logger.Debug("module assembled",
		zap.String("module", meta.ModuleName),
		zap.Int("inputs", sections.Inputs.Len()),
		zap.Int("outputs", sections.Outputs.Len()),
		zap.Int("parameters", sections.Parameters.Len()),
		zap.Stringer("layout", g.layout),
	)
	return result, nil
}
