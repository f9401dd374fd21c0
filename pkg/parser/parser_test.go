package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aritra741/Qualytics/pkg/ast"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"app.js", LangJavaScript},
		{"app.mjs", LangJavaScript},
		{"app.cjs", LangJavaScript},
		{"app.ts", LangTypeScript},
		{"app.mts", LangTypeScript},
		{"app.cts", LangTypeScript},
		{"app.tsx", LangTSX},
		{"app.jsx", LangTSX},
		{"APP.JS", LangJavaScript},
		{"app.py", LangUnknown},
		{"app", LangUnknown},
		{"dir/nested/file.ts", LangTypeScript},
	}

	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseJavaScript(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`
function greet(name) {
	if (name) {
		return "hello " + name;
	}
	return "hello";
}
`)
	result, err := p.Parse(source, LangJavaScript, "greet.js")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.Root == nil {
		t.Fatal("Parse returned nil root")
	}
	if result.Root.Kind != ast.KindProgram {
		t.Errorf("root kind = %s, want %s", result.Root.Kind, ast.KindProgram)
	}
	if result.Language != LangJavaScript {
		t.Errorf("Language = %q, want %q", result.Language, LangJavaScript)
	}

	if n := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindFunctionDeclaration }); n != 1 {
		t.Errorf("function declarations = %d, want 1", n)
	}
	if n := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindIfStatement }); n != 1 {
		t.Errorf("if statements = %d, want 1", n)
	}
	if n := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindReturnStatement }); n != 2 {
		t.Errorf("return statements = %d, want 2", n)
	}
}

func TestParseSyntaxError(t *testing.T) {
	p := New()
	defer p.Close()

	_, err := p.Parse([]byte("function broken( {"), LangJavaScript, "broken.js")
	if err == nil {
		t.Fatal("Parse of malformed source succeeded, want error")
	}
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("error = %v, want ErrSyntax", err)
	}
}

func TestParseTypeScript(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`
interface Shape { area(): number; }

class Circle implements Shape {
	constructor(private radius: number) {}
	area(): number { return Math.PI * this.radius ** 2; }
}
`)
	result, err := p.Parse(source, LangTypeScript, "circle.ts")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var class *ast.Node
	ast.Inspect(result.Root, func(n *ast.Node) {
		if n.Kind == ast.KindClassDeclaration {
			class = n
		}
	})
	if class == nil {
		t.Fatal("no class declaration found")
	}
	if class.Name != "Circle" {
		t.Errorf("class name = %q, want %q", class.Name, "Circle")
	}
	// implements is not inheritance
	if class.Super != nil {
		t.Errorf("class.Super = %+v, want nil", class.Super)
	}
}

func TestParseClassExtends(t *testing.T) {
	p := New()
	defer p.Close()

	tests := []struct {
		name   string
		lang   Language
		source string
	}{
		{"javascript", LangJavaScript, `class Dog extends Animal { bark() {} }`},
		{"typescript", LangTypeScript, `class Dog extends Animal { bark(): void {} }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Parse([]byte(tt.source), tt.lang, "dog."+string(tt.lang))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			var class *ast.Node
			ast.Inspect(result.Root, func(n *ast.Node) {
				if n.Kind == ast.KindClassDeclaration {
					class = n
				}
			})
			if class == nil {
				t.Fatal("no class declaration found")
			}
			if got := class.SuperName(); got != "Animal" {
				t.Errorf("SuperName() = %q, want %q", got, "Animal")
			}
		})
	}
}

func TestParseLogicalVsBinary(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`const x = (a && b) || (c ?? d); const y = a + b;`)
	result, err := p.Parse(source, LangJavaScript, "ops.js")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var logical, binary []string
	ast.Inspect(result.Root, func(n *ast.Node) {
		switch n.Kind {
		case ast.KindLogicalExpression:
			logical = append(logical, n.Operator)
		case ast.KindBinaryExpression:
			binary = append(binary, n.Operator)
		}
	})

	if len(logical) != 3 {
		t.Errorf("logical expressions = %v, want 3 operators", logical)
	}
	if len(binary) != 1 || binary[0] != "+" {
		t.Errorf("binary expressions = %v, want [+]", binary)
	}
}

func TestParseForInVsForOf(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`
for (const k in obj) { use(k); }
for (const v of list) { use(v); }
`)
	result, err := p.Parse(source, LangJavaScript, "loops.js")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	forIn := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindForInStatement })
	forOf := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindForOfStatement })
	if forIn != 1 || forOf != 1 {
		t.Errorf("for-in = %d, for-of = %d, want 1 and 1", forIn, forOf)
	}
}

func TestParseSwitchCases(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`
switch (x) {
case 1: a(); break;
case 2: b(); break;
default: c();
}
`)
	result, err := p.Parse(source, LangJavaScript, "switch.js")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var cases, defaults int
	ast.Inspect(result.Root, func(n *ast.Node) {
		if n.Kind == ast.KindSwitchCase {
			if n.Default {
				defaults++
			} else {
				cases++
			}
		}
	})
	if cases != 2 {
		t.Errorf("non-default cases = %d, want 2", cases)
	}
	if defaults != 1 {
		t.Errorf("default cases = %d, want 1", defaults)
	}
}

func TestParseJSX(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte(`const el = <div className="box">{value && <span>yes</span>}</div>;`)
	result, err := p.Parse(source, DetectLanguage("app.jsx"), "app.jsx")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Expressions embedded in JSX stay reachable.
	if n := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindLogicalExpression }); n != 1 {
		t.Errorf("logical expressions = %d, want 1", n)
	}
}

func TestParseTemplateSubstitutionsReachable(t *testing.T) {
	p := New()
	defer p.Close()

	source := []byte("const msg = `total: ${a ? b : c}`;")
	result, err := p.Parse(source, LangJavaScript, "tpl.js")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if n := ast.Count(result.Root, func(n *ast.Node) bool { return n.Kind == ast.KindConditionalExpression }); n != 1 {
		t.Errorf("conditional expressions = %d, want 1", n)
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "main.js")
	if err := os.WriteFile(path, []byte("const x = 1;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	p := New()
	defer p.Close()

	result, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}

	if _, err := p.ParseFile(filepath.Join(tmpDir, "missing.js")); err == nil {
		t.Error("ParseFile of missing file succeeded, want error")
	}

	unsupported := filepath.Join(tmpDir, "script.py")
	if err := os.WriteFile(unsupported, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := p.ParseFile(unsupported); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("ParseFile(.py) error = %v, want ErrUnsupportedLanguage", err)
	}
}
