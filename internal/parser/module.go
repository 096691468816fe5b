package parser

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// findGoModDir walks up from dir until it finds go.mod.
func findGoModDir(dir string) (string, error) {
	from, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		from = parent
	}
}

// ImportPath returns the import path dir would have inside its module.
func ImportPath(dir string) (string, error) {
	modDir, err := findGoModDir(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(modDir, "go.mod"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(modDir, abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return modPath, nil
	}
	return path.Join(modPath, filepath.ToSlash(rel)), nil
}

// PackageName derives a package clause name from an import path: the last
// element, without a major-version suffix, reduced to identifier characters.
func PackageName(importPath string) string {
	if prefix, _, ok := module.SplitPathVersion(importPath); ok {
		importPath = prefix
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, path.Base(importPath))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return ""
	}
	return name
}

// FallbackPackage picks the package clause for types without a namespace:
// the configured default, then the output directory's package, then main.
func FallbackPackage(opts *Options) string {
	if opts.DefaultPackage != "" {
		return opts.DefaultPackage
	}
	if ip, err := ImportPath(opts.OutDir); err == nil {
		if name := PackageName(ip); name != "" {
			return name
		}
	}
	return "main"
}
