package assemble

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
)

// TemplateExt is the recognized template file extension.
const TemplateExt = ".tex"

// The placeholder tokens a template may carry. Unused tokens are filled with
// the empty string.
const (
	TokenHeader       = "{{HEADER}}"
	TokenTitle        = "{{TITLE}}"
	TokenInstructions = "{{INSTRUCTIONS}}"
	TokenColumnBegin  = "{{COLUMN_BEGIN}}"
	TokenColumnEnd    = "{{COLUMN_END}}"
	TokenBody         = "{{BODY}}"
	TokenAnswerKey    = "{{ANSWER_KEY}}"
)

// TemplateStore loads named templates from a configured directory. Templates
// are plain text resources; a template is loaded once per export call and
// never mutated.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a store over dir.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Load returns the text of the named template. The name is the file stem;
// names that would escape the template directory are rejected as not found.
func (s *TemplateStore) Load(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", errors.TemplateNotFound(name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name+TemplateExt))
	if err != nil {
		return "", errors.TemplateNotFound(name)
	}
	return string(data), nil
}

// List returns the names of the available templates, sorted.
func (s *TemplateStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Internal("reading template directory "+s.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), TemplateExt) {
			names = append(names, strings.TrimSuffix(entry.Name(), TemplateExt))
		}
	}
	sort.Strings(names)
	return names, nil
}
