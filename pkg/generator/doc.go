// Package generator wires the prompt → collector → assembler → output
// pipeline behind a single entry point. Definitions loaded from YAML bypass
// the prompts and feed the same resolver and assembler.
package generator
