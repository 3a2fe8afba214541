package template

// TemplateRenderer is the seam the module assembler renders through.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
}
