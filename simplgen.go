// Package simplgen generates Crestron SIMPL+ module skeletons. The root
// package re-exports the generator entry points; the building blocks live
// under pkg/.
package simplgen

import (
	"context"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/definition"
	"github.com/goliatone/go-simplgen/pkg/generator"
)

// Metadata aliases assembler.Metadata for callers of the root package.
type Metadata = assembler.Metadata

// Definition aliases definition.Definition.
type Definition = definition.Definition

// Entry aliases definition.Entry.
type Entry = definition.Entry

// Result aliases generator.Result.
type Result = generator.Result

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) (*generator.Generator, error) {
	return generator.New(options...)
}

// GenerateInteractive prompts for a module definition and writes the result.
func GenerateInteractive(ctx context.Context, options ...generator.Option) (Result, error) {
	gen, err := generator.New(options...)
	if err != nil {
		return Result{}, err
	}
	return gen.Generate(ctx, generator.Request{})
}

// GenerateFromFile loads a YAML definition and writes the module it
// describes without prompting.
func GenerateFromFile(ctx context.Context, path string, options ...generator.Option) (Result, error) {
	def, err := definition.Load(path)
	if err != nil {
		return Result{}, err
	}
	gen, err := generator.New(options...)
	if err != nil {
		return Result{}, err
	}
	return gen.Generate(ctx, generator.Request{Definition: &def})
}

// RenderDefinition assembles the document for def without touching the
// filesystem.
func RenderDefinition(ctx context.Context, def Definition, options ...generator.Option) (string, error) {
	gen, err := generator.New(options...)
	if err != nil {
		return "", err
	}
	result, err := gen.Generate(ctx, generator.Request{Definition: &def, DryRun: true})
	if err != nil {
		return "", err
	}
	return result.Document, nil
}
