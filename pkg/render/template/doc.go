// Package template defines the template rendering contract used by the
// module assembler, with a pongo2-backed implementation in the gotemplate
// subpackage.
package template
