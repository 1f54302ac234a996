package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sable/internal/diag"
	"sable/internal/source"
)

const goodSource = `module demo;
func add(a: int, b: int) -> int { return a + b; }
func main() { let s = add(1, 2); }
`

const badSource = `module demo;
func main() { let x = missing; }
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.sb", goodSource)

	res, err := Check(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if res.Module == nil || len(res.Module.Decls) != 2 {
		t.Errorf("module = %+v, want 2 declarations", res.Module)
	}
	if res.Symbols == nil || !res.Symbols.HasValue("add") {
		t.Error("symbol table must carry the declared function")
	}
	if len(res.Tokens) == 0 {
		t.Error("tokens missing from result")
	}
}

func TestCheckReportsMissingFile(t *testing.T) {
	if _, err := Check(filepath.Join(t.TempDir(), "absent.sb"), Options{}); err == nil {
		t.Fatal("missing file must return an error")
	}
}

func TestCheckFileInMemory(t *testing.T) {
	file := source.NewVirtual("buffer.sb", []byte(badSource))
	res := CheckFile(file, Options{})
	if !res.Bag.HasErrors() {
		t.Fatal("undefined identifier must be diagnosed")
	}
	if res.Bag.Items()[0].File != "buffer.sb" {
		t.Errorf("diagnostic file = %q, want buffer.sb", res.Bag.Items()[0].File)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sb", goodSource)
	writeFile(t, dir, "b.sb", badSource)
	writeFile(t, dir, "ignored.txt", "not sable")

	var events []Event
	fs, results, err := CheckDir(context.Background(), dir, Options{
		Progress: func(ev Event) { events = append(events, ev) },
		Jobs:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 source files", len(results))
	}
	// sorted listing: a.sb before b.sb
	if results[0].Bag.HasErrors() {
		t.Errorf("a.sb must be clean: %v", results[0].Bag.Items())
	}
	if !results[1].Bag.HasErrors() {
		t.Error("b.sb must carry its semantic error")
	}
	if fs.Len() != 2 {
		t.Errorf("file set holds %d files, want 2", fs.Len())
	}
	if len(events) == 0 {
		t.Error("progress events missing")
	}
	last := events[len(events)-1]
	if last.Stage != StageCheck {
		t.Errorf("final event stage = %v, want checking", last.Stage)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	fs, results, err := CheckDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 || fs.Len() != 0 {
		t.Errorf("results = %d, files = %d, want none", len(results), fs.Len())
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	key := DigestOf([]byte("content"))
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "x.sb",
		Diagnostics: []CachedDiagnostic{
			{Severity: uint8(diag.SevError), Code: uint16(diag.SemaUndefinedIdent), Message: "m", Line: 2, Start: 1, End: 3},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	var got DiskPayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if got.Path != "x.sb" || len(got.Diagnostics) != 1 || got.Diagnostics[0].Line != 2 {
		t.Errorf("payload = %+v", got)
	}

	var miss DiskPayload
	if ok, _ := cache.Get(DigestOf([]byte("other")), &miss); ok {
		t.Error("unknown key must miss")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sb", badSource)
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache, Jobs: 1}

	_, first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run must not be cached")
	}

	_, second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run over unchanged content must replay from cache")
	}
	if second[0].Bag.Len() != first[0].Bag.Len() {
		t.Errorf("cached diagnostics = %d, want %d", second[0].Bag.Len(), first[0].Bag.Len())
	}
	if second[0].Bag.Items()[0].Code != first[0].Bag.Items()[0].Code {
		t.Error("cached diagnostic code must survive the round trip")
	}
}
