// Package store resolves question-list identifiers to parsed lists. Lists
// live as YAML documents in a configured directory; the identifier is the
// file stem. This is the adapter behind the exporter's ListResolver port;
// the pipeline itself performs no storage access.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
)

// ListExt is the recognized list file extension.
const ListExt = ".yaml"

// DirResolver resolves list ids against a directory of YAML files.
type DirResolver struct {
	dir string
}

// NewDirResolver creates a resolver over dir.
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{dir: dir}
}

// ResolveList loads and validates the list stored under id.
func (r *DirResolver) ResolveList(ctx context.Context, id string) (*types.QuestionList, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, errors.ListNotFound(id)
	}

	path := filepath.Join(r.dir, id+ListExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ListNotFound(id)
	}

	return ParseList(id, data)
}

// List returns the ids of the available lists, in directory order.
func (r *DirResolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.Internal("reading list directory "+r.dir, err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ListExt) {
			ids = append(ids, strings.TrimSuffix(entry.Name(), ListExt))
		}
	}
	return ids, nil
}

// ParseList decodes a YAML list document and applies shape validation.
func ParseList(id string, data []byte) (*types.QuestionList, error) {
	var list types.QuestionList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.ListInvalid(id, "yaml: "+err.Error())
	}
	if err := validateList(&list); err != nil {
		return nil, errors.ListInvalid(id, err.Error())
	}
	return &list, nil
}

// validateList enforces the minimum shape the pipeline relies on. Anything
// beyond this (the exactly-one-correct invariant in particular) is upstream
// responsibility and degrades gracefully downstream.
func validateList(list *types.QuestionList) error {
	if strings.TrimSpace(list.Title) == "" {
		return fmt.Errorf("missing title")
	}
	if len(list.Questions) == 0 {
		return fmt.Errorf("list has no questions")
	}
	for i := range list.Questions {
		q := &list.Questions[i]
		switch q.Kind {
		case types.KindObjective:
			if len(q.Alternatives) == 0 {
				return fmt.Errorf("question %d: objective question has no alternatives", i+1)
			}
		case types.KindEssay:
			if len(q.Alternatives) > 0 {
				return fmt.Errorf("question %d: essay question carries alternatives", i+1)
			}
		default:
			return fmt.Errorf("question %d: unknown kind %q", i+1, q.Kind)
		}
		if strings.TrimSpace(q.Statement) == "" {
			return fmt.Errorf("question %d: missing statement", i+1)
		}
	}
	return nil
}
