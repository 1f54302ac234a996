package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded [package] section of sable.toml.
type Manifest struct {
	Name    string
	Version string
	// Root is the source directory, relative to the manifest.
	Root string
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Root    string `toml:"root"`
	} `toml:"package"`
}

// LoadManifest parses the sable.toml at path.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return manifestFrom(path, meta, cfg)
}

// DecodeManifest parses manifest text, for callers that already hold
// the bytes.
func DecodeManifest(name, text string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return manifestFrom(name, meta, cfg)
}

func manifestFrom(path string, meta toml.MetaData, cfg manifestFile) (Manifest, error) {
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	root := strings.TrimSpace(cfg.Package.Root)
	if root == "" {
		root = "src"
	}
	if filepath.IsAbs(root) {
		return Manifest{}, fmt.Errorf("%s: invalid [package].root %q: must be relative", path, root)
	}
	return Manifest{
		Name:    name,
		Version: strings.TrimSpace(cfg.Package.Version),
		Root:    root,
	}, nil
}
