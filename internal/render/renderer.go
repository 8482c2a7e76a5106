// Package render turns a single question into a LaTeX fragment ready for
// template insertion. All free text passes through the sanitizer, image
// references through the path sandbox, and scale factors through the clamp.
package render

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/sanitize"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/validation"
)

// Renderer produces per-question LaTeX fragments.
type Renderer struct {
	sanitizer *sanitize.Sanitizer
	imageRoot string
	minScale  float64
	maxScale  float64
	logger    logging.Logger
}

// Options configures a Renderer.
type Options struct {
	// ImageRoot is the sandbox root that every image reference must resolve under
	ImageRoot string
	// MinScale/MaxScale bound clamped image scale factors
	MinScale float64
	MaxScale float64
}

// NewRenderer creates a renderer. Zero scale bounds fall back to the
// sanitize defaults.
func NewRenderer(sanitizer *sanitize.Sanitizer, opts Options, logger logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Nop()
	}
	minScale := opts.MinScale
	if minScale <= 0 {
		minScale = sanitize.DefaultMinScale
	}
	maxScale := opts.MaxScale
	if maxScale <= 0 {
		maxScale = sanitize.DefaultMaxScale
	}
	return &Renderer{
		sanitizer: sanitizer,
		imageRoot: opts.ImageRoot,
		minScale:  minScale,
		maxScale:  maxScale,
		logger:    logger.WithComponent("renderer"),
	}
}

// RenderQuestion renders one question as a LaTeX fragment: sanitized
// statement, optional sandboxed image, the alternatives block for objective
// questions, and the optional resolution block. The fragment starts with an
// \item so the assembler can concatenate fragments inside one enumerate
// environment.
func (r *Renderer) RenderQuestion(q *types.Question, opts types.ExportOptions) string {
	var b strings.Builder

	b.WriteString("\\item ")
	b.WriteString(r.sanitizer.Sanitize(q.Statement))
	b.WriteString("\n")

	if q.ImagePath != "" {
		r.writeImage(&b, q.ImagePath, q.ImageScale, opts.DefaultScale, q.ID)
	}

	if q.Kind == types.KindObjective && len(q.Alternatives) > 0 {
		// Labels come from the stored letters, not from auto-numbering: the
		// answer key reports the stored letter of the correct alternative,
		// so the printed label must be the same field.
		b.WriteString("\\begin{enumerate}[label=\\Alph*)]\n")
		for i := range q.Alternatives {
			alt := &q.Alternatives[i]
			b.WriteString("\\item[")
			b.WriteString(r.sanitizer.Sanitize(altLetter(alt, i)))
			b.WriteString(")] ")
			b.WriteString(r.sanitizer.Sanitize(alt.Text))
			b.WriteString("\n")
			if alt.ImagePath != "" {
				r.writeImage(&b, alt.ImagePath, alt.ImageScale, opts.DefaultScale, q.ID)
			}
		}
		b.WriteString("\\end{enumerate}\n")
	}

	if opts.IncludeResolution && q.Resolution != "" {
		b.WriteString("\\begin{quote}\\textbf{Resolu\\c{c}\\~ao:} ")
		b.WriteString(r.sanitizer.Sanitize(q.Resolution))
		b.WriteString("\\end{quote}\n")
	}

	return b.String()
}

// altLetter prefers the stored letter; an alternative persisted without one
// falls back to its positional letter.
func altLetter(alt *types.Alternative, pos int) string {
	if alt.Letter != "" {
		return alt.Letter
	}
	return string(rune('A' + pos))
}

// writeImage appends an \includegraphics directive when the referenced path
// resolves inside the image sandbox. Rejected references are skipped with a
// warning; a bad image never fails the export.
func (r *Renderer) writeImage(b *strings.Builder, path string, scale, defaultScale float64, questionID int64) {
	if !validation.SafeImagePath(path, r.imageRoot) {
		r.logger.Warn(context.Background(), nil, "image reference outside sandbox, skipping",
			"path", path, "question", questionID)
		return
	}

	if defaultScale <= 0 {
		defaultScale = 1
	}
	factor := scale
	if factor <= 0 {
		factor = defaultScale
	}
	factor = sanitize.Clamp(factor, defaultScale, r.minScale, r.maxScale)

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.imageRoot, path)
	}
	fmt.Fprintf(b, "\\begin{center}\\includegraphics[scale=%.2f]{%s}\\end{center}\n",
		factor, filepath.ToSlash(full))
}
