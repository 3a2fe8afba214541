package assembler

import (
	"strings"

	"github.com/goliatone/go-simplgen/pkg/output"
)

// Metadata defaults.
const (
	DefaultCategory = "User Modules"
	DefaultVersion  = "1.0.0"
)

// Metadata carries the header fields of a generated module.
type Metadata struct {
	// ModuleName is the module name without the file extension.
	ModuleName string
	// FileName is the output file name, extension included.
	FileName    string
	SymbolName  string
	Category    string
	Author      string
	Description string
	Version     string
}

// NewMetadata seeds metadata from a user-entered module name, which may or
// may not carry the .usp extension.
func NewMetadata(name string) Metadata {
	module, file := output.SplitFileName(name)
	return Metadata{ModuleName: module, FileName: file}
}

// Normalize fills blank optional fields with their defaults.
func (m Metadata) Normalize() Metadata {
	m.ModuleName = strings.TrimSpace(m.ModuleName)
	if m.FileName == "" && m.ModuleName != "" {
		m.ModuleName, m.FileName = output.SplitFileName(m.ModuleName)
	}
	if strings.TrimSpace(m.SymbolName) == "" {
		m.SymbolName = m.ModuleName
	}
	if strings.TrimSpace(m.Category) == "" {
		m.Category = DefaultCategory
	}
	if strings.TrimSpace(m.Version) == "" {
		m.Version = DefaultVersion
	}
	return m
}
