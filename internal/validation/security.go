// Package validation provides the security checks of the export pipeline:
// image path sandboxing and output-name validation against path traversal.
package validation

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
)

// SafeImagePath reports whether path resolves to a location strictly inside
// root. Relative paths are resolved against root; symlinks are resolved on
// both sides before comparison. Every resolution failure (missing file,
// permission error, malformed path) counts as unsafe.
func SafeImagePath(path, root string) bool {
	if path == "" || root == "" {
		return false
	}

	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return false
	}
	resolvedRoot, err = filepath.Abs(resolvedRoot)
	if err != nil {
		return false
	}

	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(root, candidate)
	}
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return false
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(resolvedRoot, resolved)
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	// The root itself is a directory, not an image.
	if rel == "." {
		return false
	}
	return true
}

// ValidateBaseName validates an output base name before any filesystem
// effect. The name becomes both the temporary directory component and the
// artifact file stem, so path separators and traversal tokens are rejected
// outright.
func ValidateBaseName(name string) error {
	if name == "" {
		return errors.InvalidName(name, "empty name")
	}
	if strings.Contains(name, "..") {
		return errors.InvalidName(name, "contains parent-directory token")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.InvalidName(name, "contains path separator")
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return errors.InvalidName(name, "contains path separator")
	}
	if strings.ContainsRune(name, os.PathListSeparator) {
		return errors.InvalidName(name, "contains path-list separator")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.InvalidName(name, "contains control character")
		}
	}
	return nil
}
