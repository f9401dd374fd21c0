// Package parser turns JavaScript and TypeScript source text into the
// closed syntax tree defined by pkg/ast, using tree-sitter grammars.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/aritra741/Qualytics/pkg/ast"
)

// Language represents a supported source language.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangUnknown    Language = "unknown"
)

// ErrSyntax is returned when source text does not parse cleanly. The
// caller decides how to degrade; the parser never returns a partial tree.
var ErrSyntax = errors.New("syntax error")

// ErrUnsupportedLanguage is returned for files outside the JS/TS family.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Parser wraps a tree-sitter parser. One Parser serves one goroutine;
// concurrent analyses each create their own (see internal/fileproc).
type Parser struct {
	parser *sitter.Parser
}

// ParseResult is a parsed file: the converted tree plus metadata.
type ParseResult struct {
	Root     *ast.Node
	Language Language
	Path     string
}

// New creates a parser instance.
func New() *Parser {
	return &Parser{parser: sitter.NewParser()}
}

// ParseFile reads and parses a source file.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	lang := DetectLanguage(path)
	if lang == LangUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	return p.Parse(source, lang, path)
}

// Parse parses source code with the given language. JSX is accepted:
// .jsx files are routed to the TSX grammar by DetectLanguage. A tree
// containing any syntax error yields ErrSyntax rather than a partial AST.
func (p *Parser) Parse(source []byte, lang Language, path string) (*ParseResult, error) {
	tsLang, err := grammarFor(lang)
	if err != nil {
		return nil, err
	}

	p.parser.SetLanguage(tsLang)
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w in %s", ErrSyntax, path)
	}

	return &ParseResult{
		Root:     convert(root, source),
		Language: lang,
		Path:     path,
	}, nil
}

// grammarFor returns the tree-sitter grammar for a language.
func grammarFor(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}

// DetectLanguage determines the language from a file path.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return LangJavaScript
	case ".ts", ".mts", ".cts":
		return LangTypeScript
	case ".tsx":
		return LangTSX
	case ".jsx":
		// The TSX grammar accepts plain JSX.
		return LangTSX
	default:
		return LangUnknown
	}
}

// Close releases parser resources.
func (p *Parser) Close() {
	p.parser.Close()
}

// nodeText extracts the source text for a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}
