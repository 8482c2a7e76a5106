// Package export orchestrates one export invocation: resolve the list,
// assemble the document source, then either write the source file (manual
// mode) or hand it to the compiler gateway (direct mode).
package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/assemble"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/compile"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/validation"
)

// ListResolver supplies fully-populated question lists. The persistence
// layer sits behind this interface; the pipeline never touches storage
// directly.
type ListResolver interface {
	ResolveList(ctx context.Context, id string) (*types.QuestionList, error)
}

// Compiler is the gateway surface the exporter needs. Narrowed to an
// interface so manual-mode tests can assert zero compiler invocations.
type Compiler interface {
	Compile(ctx context.Context, source, outputDir, baseName string) (string, error)
}

// Exporter wires the pipeline together.
type Exporter struct {
	resolver  ListResolver
	assembler *assemble.Assembler
	compiler  Compiler
	logger    logging.Logger
}

// NewExporter creates an exporter.
func NewExporter(resolver ListResolver, assembler *assemble.Assembler, compiler Compiler, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Exporter{
		resolver:  resolver,
		assembler: assembler,
		compiler:  compiler,
		logger:    logger.WithComponent("exporter"),
	}
}

// Export runs one export and returns the artifact path: a .tex source in
// manual mode, a compiled .pdf in direct mode. Errors from downstream
// components propagate unmodified.
func (e *Exporter) Export(ctx context.Context, listID string, opts types.ExportOptions) (string, error) {
	list, err := e.resolver.ResolveList(ctx, listID)
	if err != nil {
		return "", err
	}

	baseName := e.baseName(list, opts)
	if err := validation.ValidateBaseName(baseName); err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", errors.Internal("creating output directory "+opts.OutputDir, err)
	}

	source, err := e.assembler.Assemble(list, opts)
	if err != nil {
		return "", err
	}

	if opts.Mode == types.ModeManual {
		target := filepath.Join(opts.OutputDir, baseName+compile.SourceExt)
		if err := os.WriteFile(target, []byte(source), 0o644); err != nil {
			return "", errors.Internal("writing source file", err)
		}
		e.logger.Info(ctx, "manual export finished", "list", listID, "source", target)
		return target, nil
	}

	artifact, err := e.compiler.Compile(ctx, source, opts.OutputDir, baseName)
	if err != nil {
		return "", err
	}
	e.logger.Info(ctx, "direct export finished", "list", listID, "artifact", artifact)
	return artifact, nil
}

// baseName combines the slugged list title with the template identifier.
// An untitled list still gets a usable name.
func (e *Exporter) baseName(list *types.QuestionList, opts types.ExportOptions) string {
	slug := Slug(list.Title)
	if slug == "" {
		slug = "lista"
	}
	if tmpl := Slug(opts.Template); tmpl != "" {
		slug += "-" + tmpl
	}
	return slug
}
