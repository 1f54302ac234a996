// Package driver wires the front end together: lexing, parsing and
// semantic analysis over single files or whole directories, with
// timings, a progress feed and a content-addressed result cache.
package driver

import (
	"time"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/sema"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/token"
)

// Options configures a pipeline run.
type Options struct {
	// MaxDiagnostics caps each file's bag. Zero falls back to 256.
	MaxDiagnostics int
	// Jobs bounds directory-level parallelism. Zero means GOMAXPROCS.
	Jobs int
	// Cache, when set, lets unchanged files skip re-analysis.
	Cache *DiskCache
	// Progress receives one event per file and stage. May be nil.
	Progress func(Event)
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}

// Timings records wall-clock duration per stage.
type Timings struct {
	Lex   time.Duration
	Parse time.Duration
	Check time.Duration
}

// Total sums the stage durations.
func (t Timings) Total() time.Duration {
	return t.Lex + t.Parse + t.Check
}

// Result is the complete front-end output for one file.
type Result struct {
	Path    string
	File    *source.File
	Tokens  []token.Token
	Module  *ast.Module
	Symbols *symbols.MultiTable
	Bag     *diag.Bag
	Timings Timings
	// Cached is set when the result was replayed from the disk cache.
	Cached bool
}

// Tokenize runs only the lexer over path.
func Tokenize(path string, opts Options) (*Result, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	res := &Result{Path: path, File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
	res.lex()
	return res, nil
}

// Parse runs the lexer and parser over path.
func Parse(path string, opts Options) (*Result, error) {
	res, err := Tokenize(path, opts)
	if err != nil {
		return nil, err
	}
	res.parse(opts)
	return res, nil
}

// Check runs the full pipeline over path.
func Check(path string, opts Options) (*Result, error) {
	res, err := Parse(path, opts)
	if err != nil {
		return nil, err
	}
	res.check()
	return res, nil
}

// CheckFile runs the full pipeline over an in-memory file, for tools
// that hold unsaved buffers.
func CheckFile(file *source.File, opts Options) *Result {
	res := &Result{Path: file.Name, File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
	res.lex()
	res.parse(opts)
	res.check()
	return res
}

func (r *Result) reporter() diag.Reporter {
	return diag.BagReporter{Bag: r.Bag, File: r.File.Name}
}

func (r *Result) lex() {
	start := time.Now()
	r.Tokens = lexer.New(r.File, lexer.Options{Reporter: r.reporter()}).ScanTokens()
	r.Timings.Lex = time.Since(start)
}

func (r *Result) parse(opts Options) {
	start := time.Now()
	r.Module = parser.ParseModule(r.Tokens, parser.Options{
		Reporter:  r.reporter(),
		MaxErrors: uint(opts.maxDiagnostics()),
	})
	r.Timings.Parse = time.Since(start)
}

func (r *Result) check() {
	start := time.Now()
	r.Symbols = sema.Check(r.Module, sema.Options{Reporter: r.reporter()})
	r.Timings.Check = time.Since(start)
}
