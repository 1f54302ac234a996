package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeManifest(t *testing.T) {
	m, err := DecodeManifest("sable.toml", `
[package]
name = "demo"
version = "0.1.0"
root = "lib"
`)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "demo" || m.Version != "0.1.0" || m.Root != "lib" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestDecodeManifestDefaults(t *testing.T) {
	m, err := DecodeManifest("sable.toml", `
[package]
name = "demo"
`)
	if err != nil {
		t.Fatal(err)
	}
	if m.Root != "src" {
		t.Errorf("default root = %q, want src", m.Root)
	}
}

func TestDecodeManifestErrors(t *testing.T) {
	if _, err := DecodeManifest("sable.toml", `title = "no package"`); !errors.Is(err, ErrPackageSectionMissing) {
		t.Errorf("err = %v, want missing [package]", err)
	}
	if _, err := DecodeManifest("sable.toml", "[package]\nversion = \"1\"\n"); !errors.Is(err, ErrPackageNameMissing) {
		t.Errorf("err = %v, want missing name", err)
	}
	if _, err := DecodeManifest("sable.toml", "[package]\nname = \"x\"\nroot = \"/abs\"\n"); err == nil {
		t.Error("absolute root must be rejected")
	}
}

func TestFindProjectRootWalksUp(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(manifest, []byte("[package]\nname = \"demo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	resolved, _ := filepath.EvalSymlinks(root)
	wantRoot, _ := filepath.EvalSymlinks(dir)
	if resolved != wantRoot {
		t.Errorf("root = %q, want %q", resolved, wantRoot)
	}
}

func TestFindProjectRootAbsent(t *testing.T) {
	_, ok, err := FindProjectRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("no manifest anywhere up the tree, ok must be false")
	}
}
