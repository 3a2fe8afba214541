package collector

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/prompt"
)

// CollectMetadata prompts for the module header fields. Required fields are
// asked again until a non-blank answer arrives; optional fields fall back to
// their defaults.
func (c *Collector) CollectMetadata(ctx context.Context) (assembler.Metadata, error) {
	var meta assembler.Metadata

	fileName, err := c.required(ctx, "Module Filename (no ext)")
	if err != nil {
		return meta, err
	}
	meta = assembler.NewMetadata(fileName)

	symbol, err := c.optional(ctx, "Symbol Name", meta.ModuleName)
	if err != nil {
		return meta, err
	}
	meta.SymbolName = symbol

	if meta.Author, err = c.required(ctx, "Author"); err != nil {
		return meta, err
	}
	if meta.Description, err = c.required(ctx, "Description"); err != nil {
		return meta, err
	}

	category, err := c.optional(ctx, "Category", assembler.DefaultCategory)
	if err != nil {
		return meta, err
	}
	meta.Category = category

	c.logger.Debug("metadata collected",
		zap.String("module", meta.ModuleName),
		zap.String("file", meta.FileName),
		zap.String("symbol", meta.SymbolName),
	)
	return meta.Normalize(), nil
}

func (c *Collector) required(ctx context.Context, message string) (string, error) {
	for {
		value, err := c.driver.Input(ctx, prompt.InputConfig{Message: message})
		if err != nil {
			return "", err
		}
		if value = strings.TrimSpace(value); value != "" {
			return value, nil
		}
		if err := c.info(ctx, "This field is required."); err != nil {
			return "", err
		}
	}
}

func (c *Collector) optional(ctx context.Context, message, fallback string) (string, error) {
	value, err := c.driver.Input(ctx, prompt.InputConfig{
		Message: message,
		Default: fallback,
	})
	if err != nil {
		return "", err
	}
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	return fallback, nil
}
