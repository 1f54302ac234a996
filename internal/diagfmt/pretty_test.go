package diagfmt

import (
	"strings"
	"testing"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

func renderSource(t *testing.T, src string) string {
	t.Helper()
	bag := diag.NewBag(16)
	file := source.NewVirtual("test.sb", []byte(src))
	reporter := diag.BagReporter{Bag: bag, File: file.Name}
	lexer.New(file, lexer.Options{Reporter: reporter}).ScanTokens()
	bag.Sort()

	fs := source.NewFileSet()
	fs.Add(file)
	var sb strings.Builder
	Pretty(&sb, bag, fs, DefaultPrettyOpts())
	return sb.String()
}

func TestPrettyHeaderAndLocation(t *testing.T) {
	out := renderSource(t, "let x = @;\n")
	if !strings.Contains(out, "error[LEX1001]: unexpected token '@'") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "--> test.sb:1:9") {
		t.Errorf("missing location line in:\n%s", out)
	}
	if !strings.Contains(out, "help: Remove this character") {
		t.Errorf("missing fix help in:\n%s", out)
	}
}

func TestPrettyCaretAlignment(t *testing.T) {
	out := renderSource(t, "let x = @;\n")
	lines := strings.Split(out, "\n")
	var src, caret string
	for i, l := range lines {
		if strings.Contains(l, "let x = @;") && i+1 < len(lines) {
			src, caret = l, lines[i+1]
		}
	}
	if src == "" {
		t.Fatalf("source line not rendered:\n%s", out)
	}
	srcAt := strings.Index(src, "@")
	caretAt := strings.Index(caret, "^")
	if caretAt < 0 {
		t.Fatalf("no caret under the source line:\n%s", out)
	}
	if strings.Count(caret, "^") != 1 {
		t.Errorf("caret count = %d, want 1", strings.Count(caret, "^"))
	}
	if caretAt != srcAt {
		t.Errorf("caret at column %d, source '@' at column %d:\n%s", caretAt, srcAt, out)
	}
}

func TestPrettyMissingFileFallsBack(t *testing.T) {
	bag := diag.NewBag(4)
	reporter := diag.BagReporter{Bag: bag, File: "gone.sb"}
	diag.ReportError(reporter, diag.SynUnexpectedToken,
		source.Loc{Line: 1, Span: source.NewSpan(0, 1)}, "Expected expression").Emit()

	var sb strings.Builder
	Pretty(&sb, bag, source.NewFileSet(), DefaultPrettyOpts())
	out := sb.String()
	if !strings.Contains(out, "error[SYN2001]: Expected expression") {
		t.Errorf("missing header in:\n%s", out)
	}
	if strings.Contains(out, "|") {
		t.Errorf("snippet gutter rendered without a source file:\n%s", out)
	}
}

func TestTokenDumps(t *testing.T) {
	file := source.NewVirtual("test.sb", []byte("let x = 1;"))
	toks := lexer.New(file, lexer.Options{}).ScanTokens()

	var pretty strings.Builder
	if err := FormatTokensPretty(&pretty, toks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "let") || !strings.Contains(pretty.String(), token.EOF.String()) {
		t.Errorf("pretty dump incomplete:\n%s", pretty.String())
	}

	var jsonOut strings.Builder
	if err := FormatTokensJSON(&jsonOut, toks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(jsonOut.String(), `"kind"`) {
		t.Errorf("json dump incomplete:\n%s", jsonOut.String())
	}
}
