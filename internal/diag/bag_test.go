package diag

import (
	"testing"

	"sable/internal/source"
)

func loc(line, start, end uint32) source.Loc {
	return source.Loc{Line: line, Span: source.NewSpan(start, end)}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevError}) || !b.Add(Diagnostic{Severity: SevError}) {
		t.Fatal("first two adds must succeed")
	}
	if b.Add(Diagnostic{Severity: SevError}) {
		t.Error("third add must be rejected at cap 2")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagCapClamps(t *testing.T) {
	b := NewBag(1 << 20)
	if b.Cap() != 65535 {
		t.Fatalf("Cap = %d, want the oversized request clamped to 65535", b.Cap())
	}
	if !b.Add(Diagnostic{Severity: SevError}) {
		t.Error("clamped bag must still accept diagnostics")
	}
	if NewBag(-3).Cap() != 0 {
		t.Error("negative cap must clamp to 0")
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Error("warning-only bag must not report errors")
	}
	if !b.HasWarnings() {
		t.Error("bag must report warnings")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Error("bag with an error must report errors")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{File: "b.sb", Primary: loc(1, 0, 1), Severity: SevError})
	b.Add(Diagnostic{File: "a.sb", Primary: loc(4, 2, 3), Severity: SevError})
	b.Add(Diagnostic{File: "a.sb", Primary: loc(2, 8, 9), Severity: SevError})
	b.Add(Diagnostic{File: "a.sb", Primary: loc(2, 1, 2), Severity: SevError})
	b.Sort()

	items := b.Items()
	want := []source.Loc{loc(2, 1, 2), loc(2, 8, 9), loc(4, 2, 3), loc(1, 0, 1)}
	for i, w := range want {
		if items[i].Primary != w {
			t.Errorf("item %d at %v, want %v", i, items[i].Primary, w)
		}
	}
	if items[3].File != "b.sb" {
		t.Error("file ordering must come before line ordering")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Severity: SevError})
	b := NewBag(2)
	b.Add(Diagnostic{Severity: SevWarning})
	b.Add(Diagnostic{Severity: SevWarning})
	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("merged Len = %d, want 3", a.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag, File: "main.sb"}
	rb := ReportError(r, SynUnexpectedToken, loc(3, 4, 5), "unexpected token ')'").
		WithNote(loc(3, 0, 1), "while parsing this expression").
		WithFix("Remove this character", FixEdit{Loc: loc(3, 4, 5)})
	rb.Emit()
	rb.Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (Emit must be idempotent)", bag.Len())
	}
	d := bag.Items()[0]
	if d.File != "main.sb" {
		t.Errorf("File = %q, want stamped filename", d.File)
	}
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("notes/fixes = %d/%d, want 1/1", len(d.Notes), len(d.Fixes))
	}
}
