package simplgen

import (
	"io/fs"

	"github.com/goliatone/go-simplgen/pkg/assembler"
)

// EmbeddedTemplates exposes the built-in module template so callers can copy
// it into a template directory and customise it.
func EmbeddedTemplates() fs.FS {
	return assembler.TemplatesFS()
}
