// Package output resolves where a generated module is written and performs
// the single write at the end of a run.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is appended to module file names.
const Extension = ".usp"

// Dir is the subdirectory used by the nested layout.
const Dir = "simplplus"

// Layout selects where generated files land relative to the base directory.
type Layout int

const (
	// LayoutNested writes to <base>/simplplus/<file>.
	LayoutNested Layout = iota
	// LayoutFlat writes to <base>/<file>.
	LayoutFlat
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	if l == LayoutFlat {
		return "flat"
	}
	return "nested"
}

// SplitFileName separates a user-entered module name into the bare module
// name and the file name. The extension check is case-insensitive and a
// supplied extension is kept verbatim in the file name.
func SplitFileName(name string) (module, file string) {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(name), Extension) {
		return name[:len(name)-len(Extension)], name
	}
	return name, name + Extension
}

// Resolve returns the absolute output path for name. An empty base resolves
// against the current working directory.
func Resolve(base, name string, layout Layout) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("output: module name is required")
	}
	_, file := SplitFileName(name)

	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("output: working directory: %w", err)
		}
		base = wd
	}

	dir := base
	if layout == LayoutNested {
		dir = filepath.Join(base, Dir)
	}

	path, err := filepath.Abs(filepath.Join(dir, file))
	if err != nil {
		return "", fmt.Errorf("output: resolve %s: %w", file, err)
	}
	return path, nil
}

// Write creates the parent directory if needed and replaces the file at path
// with text.
func Write(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
