package simplgen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-simplgen/pkg/generator"
	"github.com/goliatone/go-simplgen/pkg/output"
	"github.com/goliatone/go-simplgen/pkg/testsupport"
)

func TestEmbeddedTemplatesContainsModuleTemplate(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "module.usp.tpl")
	if err != nil {
		t.Fatalf("expected module template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "Function Main()") {
		t.Fatalf("expected module template to include the main function stub")
	}
}

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "pump.yaml")
	yaml := "module: Pump.usp\nauthor: A\ndescription: D\ninputs:\n  - kind: d\n    name: Run\n"
	if err := os.WriteFile(defPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}

	result, err := GenerateFromFile(context.Background(), defPath,
		generator.WithBaseDir(dir),
		generator.WithLayout(output.LayoutFlat),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := filepath.Join(dir, "Pump.usp"); result.Path != want {
		t.Fatalf("path: want %q, got %q", want, result.Path)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "DIGITAL_INPUT Run_b;") {
		t.Fatalf("expected declaration in output")
	}
}

func TestRenderDefinition(t *testing.T) {
	def := Definition{
		Module:     "Probe",
		Author:     "A",
		Parameters: []Entry{{Kind: "s", Name: "Label", Size: "20"}},
	}
	text, err := RenderDefinition(context.Background(), def, generator.WithBaseDir(t.TempDir()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(text, "STRING_PARAMETER p_Label_s[20];") {
		t.Fatalf("expected string parameter in document:\n%s", text)
	}
}

func TestGenerateInteractive(t *testing.T) {
	dir := t.TempDir()
	driver := testsupport.NewScriptedDriver(
		"Dimmer", "", "A", "D", "",
		"x",
		"a", "Level", "x",
		"x",
	)

	result, err := GenerateInteractive(context.Background(),
		generator.WithPromptDriver(driver),
		generator.WithBaseDir(dir),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := filepath.Join(dir, "simplplus", "Dimmer.usp"); result.Path != want {
		t.Fatalf("path: want %q, got %q", want, result.Path)
	}
	if !result.Written {
		t.Fatalf("expected the module to be written")
	}
	if !strings.Contains(result.Document, "ANALOG_OUTPUT Level_n;") {
		t.Fatalf("expected analog output in document:\n%s", result.Document)
	}
	if driver.Remaining() != 0 {
		t.Fatalf("expected every scripted answer to be consumed, %d left", driver.Remaining())
	}
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(generator.WithBaseDir(t.TempDir()))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	def := Definition{Module: "Relay", Inputs: []Entry{{Kind: "digital", Name: "Close"}}}
	result, err := gen.Generate(context.Background(), generator.Request{Definition: &def, DryRun: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Written {
		t.Fatalf("dry run must not write")
	}
	if !strings.Contains(result.Document, "DIGITAL_INPUT Close_b;") {
		t.Fatalf("expected digital input in document:\n%s", result.Document)
	}
}
