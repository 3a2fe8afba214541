package gotemplate_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-simplgen/pkg/render/template/gotemplate"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl": {Data: []byte("Hello {{ name }}!")},
		"quote.tpl": {Data: []byte(`#SYMBOL_NAME "{{ symbol|trim }}"`)},
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	opts = append([]gotemplate.Option{gotemplate.WithFS(testFS())}, opts...)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}

	again, err := engine.RenderTemplate("hello.tpl", map[string]any{"name": "Bo"})
	if err != nil {
		t.Fatalf("render with extension: %v", err)
	}
	if again != "Hello Bo!" {
		t.Fatalf("unexpected result %q", again)
	}
}

func TestEngine_PlainTextByDefault(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("quote", map[string]any{"symbol": ` Tom's "A & B" <zones> `})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `#SYMBOL_NAME "Tom's "A & B" <zones>"`; result != want {
		t.Fatalf("want %q, got %q", want, result)
	}
}

func TestEngine_AutoescapeOptIn(t *testing.T) {
	engine := newEngine(t, gotemplate.WithAutoescape(true))

	result, err := engine.RenderTemplate("quote", map[string]any{"symbol": `A & B`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `#SYMBOL_NAME "A &amp; B"`; result != want {
		t.Fatalf("want %q, got %q", want, result)
	}
}

func TestEngine_BaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte(`Hi "{{ name }}"`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine := newEngine(t, gotemplate.WithBaseDir(dir))
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "A&B"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != `Hi "A&B"` {
		t.Fatalf("expected unescaped disk template to win, got %q", result)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}
