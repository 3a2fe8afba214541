package assembler_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-simplgen/pkg/assembler"
	"github.com/goliatone/go-simplgen/pkg/simpl"
	"github.com/goliatone/go-simplgen/pkg/testsupport"
)

func newAssembler(t *testing.T, opts ...assembler.Option) *assembler.Assembler {
	t.Helper()
	opts = append([]assembler.Option{assembler.WithClock(testsupport.FixedClock())}, opts...)
	a, err := assembler.New(opts...)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	return a
}

func TestAssemble_SingleDigitalInput(t *testing.T) {
	a := newAssembler(t)

	meta := assembler.NewMetadata("Test")
	meta.Author = "A"
	meta.Description = "D"

	inputs := simpl.NewSection(simpl.RoleInput)
	inputs.Append(simpl.DigitalInput, "Start", "")

	got, err := a.Assemble(meta, inputs, simpl.NewSection(simpl.RoleOutput), simpl.NewSection(simpl.RoleParameter))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	testsupport.AssertGolden(t, filepath.Join("testdata", "test_module.usp.golden"), got)

	if strings.Count(got, "DIGITAL_INPUT") != 1 {
		t.Fatalf("expected exactly one digital input declaration")
	}
	if !strings.Contains(got, "// ------ OUTPUTS --------\n\n\n// ------ PARAMETERS --------\n\n\n//") {
		t.Fatalf("empty sections should render as empty blocks")
	}
}

func TestAssemble_AllSections(t *testing.T) {
	a := newAssembler(t)

	meta := assembler.Metadata{
		ModuleName:  "RoomControl",
		SymbolName:  "Room Control",
		Category:    "Lighting",
		Author:      "Integrator",
		Description: "Full fixture",
	}

	sections := simpl.NewSections()
	sections.Inputs.Append(simpl.DigitalInput, "Start", "")
	sections.Inputs.Append(simpl.AnalogInput, "Level", "")
	sections.Inputs.Append(simpl.StringInput, "Rx", "")
	sections.Outputs.Append(simpl.DigitalOutput, "Busy", "")
	sections.Outputs.Append(simpl.StringOutput, "Tx", "64")
	sections.Parameters.Append(simpl.IntegerParameter, "DeviceID", "")
	sections.Parameters.Append(simpl.StringParameter, "Label", "20")

	got, err := a.AssembleSections(meta, sections)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "full_module.usp.golden"), got)
}

func TestAssemble_Deterministic(t *testing.T) {
	a := newAssembler(t)
	meta := assembler.Metadata{ModuleName: "Same", Author: "A", Description: "D"}
	sections := simpl.NewSections()
	sections.Inputs.Append(simpl.DigitalInput, "Go", "")

	first, err := a.AssembleSections(meta, sections)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := a.AssembleSections(meta, sections)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different documents")
	}
}

func TestAssemble_DateUsesClock(t *testing.T) {
	a := newAssembler(t, assembler.WithClock(func() time.Time {
		return time.Date(2024, time.February, 3, 23, 59, 0, 0, time.UTC)
	}))

	got, err := a.AssembleSections(assembler.Metadata{ModuleName: "M"}, simpl.NewSections())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(got, "  DATE: 2024-02-03\n") {
		t.Fatalf("expected formatted date in header, got:\n%s", got)
	}
}

func TestAssemble_MetadataDefaultsAndEscaping(t *testing.T) {
	a := newAssembler(t)

	meta := assembler.Metadata{
		ModuleName:  "Quoted",
		Description: `Handles "A & B" <zones>`,
		Author:      "A",
	}
	got, err := a.AssembleSections(meta, simpl.NewSections())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	for _, want := range []string{
		`#SYMBOL_NAME      "Quoted"`,
		`#CATEGORY         "User Modules"`,
		"  VERSION: 1.0.0\n",
		`  Handles "A & B" <zones>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in document:\n%s", want, got)
		}
	}
}

func TestAssemble_TemplateDirOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "// {{ description }}\n#SYMBOL_NAME \"{{ symbol_name }}\" by {{ author }}\n{{ inputs }}\n"
	if err := os.WriteFile(filepath.Join(dir, "module.usp.tpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	a := newAssembler(t, assembler.WithTemplateDir(dir))
	sections := simpl.NewSections()
	sections.Inputs.Append(simpl.DigitalInput, "Start", "")

	meta := assembler.Metadata{
		ModuleName:  "Custom",
		SymbolName:  `Tom's "A & B"`,
		Author:      "A",
		Description: `Handles "A & B" <zones>`,
	}
	got, err := a.AssembleSections(meta, sections)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := "// Handles \"A & B\" <zones>\n#SYMBOL_NAME \"Tom's \"A & B\"\" by A\nDIGITAL_INPUT Start_b;\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

type recordingRenderer struct {
	name string
	data map[string]any
}

func (r *recordingRenderer) RenderTemplate(name string, data map[string]any) (string, error) {
	r.name = name
	r.data = data
	return "rendered", nil
}

func TestAssemble_WithRenderer(t *testing.T) {
	renderer := &recordingRenderer{}
	a := newAssembler(t, assembler.WithRenderer(renderer), assembler.WithTemplate("alt"))

	sections := simpl.NewSections()
	sections.Parameters.Append(simpl.IntegerParameter, "DeviceID", "")

	got, err := a.AssembleSections(assembler.Metadata{ModuleName: "M"}, sections)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got != "rendered" {
		t.Fatalf("expected renderer output, got %q", got)
	}
	if renderer.name != "alt" {
		t.Fatalf("expected template alt, got %q", renderer.name)
	}
	if renderer.data["parameters"] != "INTEGER_PARAMETER p_DeviceID;" {
		t.Fatalf("unexpected parameters value %v", renderer.data["parameters"])
	}
	if renderer.data["date"] != "2026-10-18" {
		t.Fatalf("unexpected date value %v", renderer.data["date"])
	}
	if renderer.data["symbol_name"] != "M" {
		t.Fatalf("expected normalised symbol name, got %v", renderer.data["symbol_name"])
	}
}

func TestAssemble_MissingTemplate(t *testing.T) {
	a := newAssembler(t, assembler.WithTemplate("does-not-exist"))
	if _, err := a.AssembleSections(assembler.Metadata{ModuleName: "M"}, simpl.NewSections()); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
