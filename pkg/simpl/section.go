package simpl

import "strings"

// Section is an ordered group of declarations sharing a role. Order of entry
// is kept as-is; duplicates are allowed.
type Section struct {
	Role         Role
	Declarations []Declaration
}

// NewSection returns an empty section for role.
func NewSection(role Role) Section {
	return Section{Role: role}
}

// Append resolves a raw entry and adds it to the end of the section.
func (s *Section) Append(kind Kind, rawName, size string) Declaration {
	decl := Resolve(kind, rawName, size)
	s.Declarations = append(s.Declarations, decl)
	return decl
}

// Len reports the number of declarations.
func (s Section) Len() int {
	return len(s.Declarations)
}

// Lines returns the rendered declaration lines in entry order.
func (s Section) Lines() []string {
	lines := make([]string, 0, len(s.Declarations))
	for _, decl := range s.Declarations {
		lines = append(lines, decl.Line())
	}
	return lines
}

// Render joins the declaration lines with single line breaks. An empty
// section renders as the empty string.
func (s Section) Render() string {
	return strings.Join(s.Lines(), "\n")
}

// Sections bundles the three sections of one module.
type Sections struct {
	Inputs     Section
	Outputs    Section
	Parameters Section
}

// NewSections returns empty sections for every role.
func NewSections() Sections {
	return Sections{
		Inputs:     NewSection(RoleInput),
		Outputs:    NewSection(RoleOutput),
		Parameters: NewSection(RoleParameter),
	}
}

// For returns a pointer to the section holding role.
func (s *Sections) For(role Role) *Section {
	switch role {
	case RoleOutput:
		return &s.Outputs
	case RoleParameter:
		return &s.Parameters
	default:
		return &s.Inputs
	}
}
