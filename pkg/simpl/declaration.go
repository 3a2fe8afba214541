package simpl

import "strings"

// Declaration is one resolved module item.
type Declaration struct {
	Kind Kind
	// Name is the name as entered, before any prefix or suffix was applied.
	Name string
	// Identifier is the canonical variable name, without array brackets.
	Identifier string
	// Size is the array size for string kinds; empty otherwise.
	Size string
}

// Keyword returns the declaration keyword for the item's kind.
func (d Declaration) Keyword() string {
	return d.Kind.Keyword()
}

// Line renders the declaration as a single SIMPL+ statement.
func (d Declaration) Line() string {
	var b strings.Builder
	b.WriteString(d.Keyword())
	b.WriteByte(' ')
	b.WriteString(d.Identifier)
	if d.Size != "" {
		b.WriteByte('[')
		b.WriteString(d.Size)
		b.WriteByte(']')
	}
	b.WriteByte(';')
	return b.String()
}

// Resolve derives the canonical declaration for a raw name. The size is only
// consulted for array kinds; a blank size falls back to the kind's default.
// rawName is expected to be trimmed and non-empty.
func Resolve(kind Kind, rawName, size string) Declaration {
	spec := kind.spec()
	decl := Declaration{Kind: kind, Name: rawName}

	identifier := rawName
	if spec.prefix != "" && !strings.HasPrefix(identifier, spec.prefix) {
		identifier = spec.prefix + identifier
	}

	if spec.bracketSkip && strings.HasSuffix(identifier, "]") {
		decl.Identifier = identifier
		return decl
	}

	if spec.suffix != "" && !strings.HasSuffix(identifier, spec.suffix) {
		identifier += spec.suffix
	}
	decl.Identifier = identifier

	if spec.array {
		size = strings.TrimSpace(size)
		if size == "" {
			size = spec.defaultSize
		}
		decl.Size = size
	}
	return decl
}
