// Package collector drives the interactive read loops that turn prompt answers
// into module metadata and ordered declaration sections.
package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-simplgen/pkg/prompt"
	"github.com/goliatone/go-simplgen/pkg/simpl"
)

// DoneSelector ends a section's read loop.
const DoneSelector = "x"

// Option configures a Collector.
type Option func(*Collector)

// WithLogger attaches a logger for debug tracing of collected entries.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Collector reads sections and metadata through a prompt.Driver.
type Collector struct {
	driver prompt.Driver
	logger *zap.Logger
}

// New constructs a Collector bound to driver.
func New(driver prompt.Driver, options ...Option) (*Collector, error) {
	if driver == nil {
		return nil, errors.New("collector: prompt driver is nil")
	}
	c := &Collector{
		driver: driver,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Collect runs the read loop for one section until the done selector is
// entered. Unknown selectors are reported and re-prompted; blank names are
// skipped. Declarations keep the order in which they were entered.
func (c *Collector) Collect(ctx context.Context, role simpl.Role) (simpl.Section, error) {
	section := simpl.NewSection(role)
	menu := simpl.KindsFor(role)

	if err := c.info(ctx, fmt.Sprintf("\n--- %s ---", role.Label())); err != nil {
		return section, err
	}
	if err := c.info(ctx, legend(menu)); err != nil {
		return section, err
	}

	for {
		selector, err := c.driver.Input(ctx, prompt.InputConfig{
			Message: selectorMessage(role, menu),
		})
		if err != nil {
			return section, err
		}
		selector = strings.ToLower(strings.TrimSpace(selector))
		if selector == DoneSelector {
			c.logger.Debug("section collected",
				zap.Stringer("role", role),
				zap.Int("declarations", section.Len()),
			)
			return section, nil
		}

		kind, ok := simpl.LookupSelector(role, selector)
		if !ok {
			c.logger.Debug("invalid selector", zap.Stringer("role", role), zap.String("selector", selector))
			if err := c.info(ctx, "Invalid type."); err != nil {
				return section, err
			}
			continue
		}

		name, err := c.driver.Input(ctx, prompt.InputConfig{
			Message: "  Name " + nameExample(role),
		})
		if err != nil {
			return section, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var size string
		if kind.IsArray() {
			size, err = c.driver.Input(ctx, prompt.InputConfig{
				Message: "  String Size",
				Default: kind.DefaultSize(),
			})
			if err != nil {
				return section, err
			}
		}

		decl := section.Append(kind, name, size)
		c.logger.Debug("declaration added",
			zap.Stringer("kind", kind),
			zap.String("name", name),
			zap.String("line", decl.Line()),
		)
	}
}

// CollectAll collects inputs, outputs and parameters in that order.
func (c *Collector) CollectAll(ctx context.Context) (simpl.Sections, error) {
	sections := simpl.NewSections()
	for _, role := range []simpl.Role{simpl.RoleInput, simpl.RoleOutput, simpl.RoleParameter} {
		section, err := c.Collect(ctx, role)
		if err != nil {
			return sections, fmt.Errorf("collector: %s: %w", role, err)
		}
		*sections.For(role) = section
	}
	return sections, nil
}

func (c *Collector) info(ctx context.Context, msg string) error {
	return c.driver.Info(ctx, msg)
}

func legend(menu []simpl.Kind) string {
	parts := make([]string, 0, len(menu)+1)
	for _, kind := range menu {
		word := kind.Word()
		parts = append(parts, fmt.Sprintf("(%s)%s", word[:1], word[1:]))
	}
	parts = append(parts, fmt.Sprintf("(%s) done", DoneSelector))
	return "Types: " + strings.Join(parts, ", ")
}

func selectorMessage(role simpl.Role, menu []simpl.Kind) string {
	tags := make([]string, 0, len(menu)+1)
	for _, kind := range menu {
		tags = append(tags, kind.Selector())
	}
	tags = append(tags, DoneSelector)

	label := role.Label()
	if role == simpl.RoleParameter {
		label = "Parameter"
	}
	return fmt.Sprintf("Add %s Type [%s]", label, strings.Join(tags, "/"))
}

func nameExample(role simpl.Role) string {
	if role == simpl.RoleParameter {
		return "(e.g., DeviceID)"
	}
	return "(e.g., StartSystem)"
}
