package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sable/internal/driver"
)

func TestStartCheckDirJoinsBeforeResults(t *testing.T) {
	dir := t.TempDir()
	src := "module demo;\nfunc main() { let x = 1; }\n"
	if err := os.WriteFile(filepath.Join(dir, "a.sb"), []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	// Read no events at all, as a viewer that quits immediately would.
	_, wait := startCheckDir(context.Background(), dir, driver.Options{Jobs: 1})
	results, err := wait()
	if err != nil {
		t.Fatalf("wait() error = %v", err)
	}
	if len(results) != 1 || results[0] == nil {
		t.Fatalf("results = %v, want the one checked file", results)
	}
	if results[0].Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", results[0].Bag.Items())
	}
}
