// Package definition reads and writes YAML module definitions, the batch
// counterpart of an interactive session. A definition replays the exact
// entries a user would type: metadata plus ordered (kind, name, size)
// entries per section.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/simpl"
)

var (
	// ErrUnknownKind is returned for entries whose kind is not valid in their
	// section.
	ErrUnknownKind = errors.New("definition: unknown kind")
	// ErrEmptyName is returned for entries without a name.
	ErrEmptyName = errors.New("definition: entry name is required")
	// ErrMissingModule is returned when the module name is blank.
	ErrMissingModule = errors.New("definition: module name is required")
)

// Entry is one declared item as entered.
type Entry struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	Size string `yaml:"size,omitempty"`
}

// Definition is the YAML document shape.
type Definition struct {
	Module      string  `yaml:"module"`
	SymbolName  string  `yaml:"symbol_name,omitempty"`
	Category    string  `yaml:"category,omitempty"`
	Author      string  `yaml:"author,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Version     string  `yaml:"version,omitempty"`
	Inputs      []Entry `yaml:"inputs,omitempty"`
	Outputs     []Entry `yaml:"outputs,omitempty"`
	Parameters  []Entry `yaml:"parameters,omitempty"`
}

// Load reads and parses a definition file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return def, nil
}

// Parse decodes a YAML definition. Unknown fields are rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("definition: decode: %w", err)
	}
	return def, nil
}

// Metadata returns the normalised module metadata.
func (d Definition) Metadata() (assembler.Metadata, error) {
	if strings.TrimSpace(d.Module) == "" {
		return assembler.Metadata{}, ErrMissingModule
	}
	meta := assembler.NewMetadata(d.Module)
	meta.SymbolName = strings.TrimSpace(d.SymbolName)
	meta.Category = strings.TrimSpace(d.Category)
	meta.Author = d.Author
	meta.Description = d.Description
	meta.Version = strings.TrimSpace(d.Version)
	return meta.Normalize(), nil
}

// Resolve turns every entry into a declaration. Unlike the interactive
// collector there is nobody to re-prompt, so invalid entries are errors.
func (d Definition) Resolve() (assembler.Metadata, simpl.Sections, error) {
	sections := simpl.NewSections()

	meta, err := d.Metadata()
	if err != nil {
		return meta, sections, err
	}

	groups := []struct {
		role    simpl.Role
		entries []Entry
	}{
		{simpl.RoleInput, d.Inputs},
		{simpl.RoleOutput, d.Outputs},
		{simpl.RoleParameter, d.Parameters},
	}
	for _, group := range groups {
		section := sections.For(group.role)
		for i, entry := range group.entries {
			kind, ok := simpl.ParseKind(group.role, entry.Kind)
			if !ok {
				return meta, sections, fmt.Errorf("%w %q in %s[%d]", ErrUnknownKind, entry.Kind, group.role, i)
			}
			name := strings.TrimSpace(entry.Name)
			if name == "" {
				return meta, sections, fmt.Errorf("%w: %s[%d]", ErrEmptyName, group.role, i)
			}
			section.Append(kind, name, entry.Size)
		}
	}
	return meta, sections, nil
}

// FromSession records collected metadata and sections as a definition. Raw
// names are stored so replaying the definition yields the same document.
func FromSession(meta assembler.Metadata, sections simpl.Sections) Definition {
	def := Definition{
		Module:      meta.FileName,
		SymbolName:  meta.SymbolName,
		Category:    meta.Category,
		Author:      meta.Author,
		Description: meta.Description,
		Version:     meta.Version,
	}
	if def.Module == "" {
		def.Module = meta.ModuleName
	}
	def.Inputs = entries(sections.Inputs)
	def.Outputs = entries(sections.Outputs)
	def.Parameters = entries(sections.Parameters)
	return def
}

func entries(section simpl.Section) []Entry {
	if section.Len() == 0 {
		return nil
	}
	out := make([]Entry, 0, section.Len())
	for _, decl := range section.Declarations {
		out = append(out, Entry{
			Kind: decl.Kind.Word(),
			Name: decl.Name,
			Size: decl.Size,
		})
	}
	return out
}

// Marshal encodes the definition as YAML.
func (d Definition) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("definition: encode: %w", err)
	}
	return data, nil
}

// Save writes the definition to path, creating the parent directory.
func (d Definition) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("definition: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("definition: write %s: %w", path, err)
	}
	return nil
}
