// Package pipeline composes the three front-end stages (lex, parse,
// analyze) into the sequence internal/workspace and cmd/orcinuscc drive for
// one module, generalizing the teacher's internal/pipeline/pipeline.go
// (there: lex/parse/eval stage chaining for a REPL) to the compiler
// front-end's own stage set. Each stage tolerates a previous stage's
// partial failure and keeps going, so a single invocation always collects
// every diagnostic from every stage that could run (§7).
package pipeline

import (
	"github.com/orcinuscc/orcinus/internal/analyzer"
	"github.com/orcinuscc/orcinus/internal/ast"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/lexer"
	"github.com/orcinuscc/orcinus/internal/parser"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/token"
)

// Context carries one module's state as it's threaded through the
// pipeline's stages; later stages read the previous stage's output.
type Context struct {
	Filename    string
	ModuleName  string
	Source      string
	Tokens      []token.Token
	Tree        *ast.Tree
	Module      *symbols.Module
	Diagnostics *diagnostics.Manager
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run threads ctx through every stage in order, continuing even if a stage
// reported errors, so later stages' diagnostics (if any can still run) are
// also collected (§7).
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// LexStage tokenizes Source into Tokens.
type LexStage struct{}

func (LexStage) Process(ctx *Context) *Context {
	ctx.Tokens = lexer.Tokenize(ctx.Filename, ctx.Source)
	return ctx
}

// ParseStage builds Tree from Tokens.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	ctx.Tree = parser.New(ctx.Tokens, ctx.Diagnostics).Parse(ctx.Filename)
	return ctx
}

// AnalyzeStage runs the semantic analyzer over Tree, producing Module.
// Importer and Builtins are captured at construction so one AnalyzeStage
// can be reused across every module in a workspace compile (§5).
type AnalyzeStage struct {
	Importer analyzer.Importer
	Builtins *symbols.Module
}

func (s AnalyzeStage) Process(ctx *Context) *Context {
	ctx.Module = analyzer.New(ctx.Diagnostics, s.Importer, s.Builtins).Analyze(ctx.Tree, ctx.ModuleName, ctx.Filename)
	return ctx
}
