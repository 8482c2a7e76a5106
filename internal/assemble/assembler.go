// Package assemble fills a named document template with rendered question
// fragments and the positionally-aligned answer key. The question order is
// computed exactly once per call and drives both the body and the key, so
// entry i of the key always refers to the question at body position i, with
// or without shuffling. This package performs no filesystem writes beyond
// template reads.
package assemble

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/render"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/sanitize"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
)

// AnswerNotAvailable is the sentinel answer-key entry emitted when an
// objective question has no alternative flagged correct, or an essay question
// has no answer text. A malformed question must not block the rest of the
// list.
const AnswerNotAvailable = "N/A"

// Assembler builds the full document source for a question list.
type Assembler struct {
	templates *TemplateStore
	renderer  *render.Renderer
	sanitizer *sanitize.Sanitizer
	rng       *rand.Rand
	logger    logging.Logger
}

// NewAssembler creates an assembler. rng drives shuffling and may be nil, in
// which case a time-seeded source is used; tests inject a fixed seed.
func NewAssembler(templates *TemplateStore, renderer *render.Renderer, sanitizer *sanitize.Sanitizer, rng *rand.Rand, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Assembler{
		templates: templates,
		renderer:  renderer,
		sanitizer: sanitizer,
		rng:       rng,
		logger:    logger.WithComponent("assembler"),
	}
}

// Assemble loads the template named by opts.Template and fills every
// placeholder token from list and opts.
func (a *Assembler) Assemble(list *types.QuestionList, opts types.ExportOptions) (string, error) {
	tmpl, err := a.templates.Load(opts.Template)
	if err != nil {
		return "", err
	}

	order := a.questionOrder(list, opts)
	a.logger.Debug(context.Background(), "question order computed",
		"order", describeOrder(order), "shuffled", opts.Shuffle)

	var body strings.Builder
	body.WriteString("\\begin{enumerate}\n")
	for _, q := range order {
		body.WriteString(a.renderer.RenderQuestion(q, opts))
	}
	body.WriteString("\\end{enumerate}\n")

	answerKey := ""
	if opts.IncludeAnswerKey {
		answerKey = a.buildAnswerKey(order)
	}

	columnBegin, columnEnd := "", ""
	if opts.Columns == 2 {
		columnBegin = "\\begin{multicols}{2}"
		columnEnd = "\\end{multicols}"
	}

	replacer := strings.NewReplacer(
		TokenHeader, a.sanitizer.Sanitize(list.Header),
		TokenTitle, a.sanitizer.Sanitize(list.Title),
		TokenInstructions, a.sanitizer.Sanitize(list.Instructions),
		TokenColumnBegin, columnBegin,
		TokenColumnEnd, columnEnd,
		TokenBody, body.String(),
		TokenAnswerKey, answerKey,
	)
	return replacer.Replace(tmpl), nil
}

// questionOrder computes the rendering order once. The returned slice is
// reused for the body and the answer key; that single computation is what
// keeps the two positionally aligned under shuffling.
func (a *Assembler) questionOrder(list *types.QuestionList, opts types.ExportOptions) []*types.Question {
	order := make([]*types.Question, len(list.Questions))
	for i := range list.Questions {
		order[i] = &list.Questions[i]
	}
	if opts.Shuffle {
		rng := a.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(rand.Int63()))
		}
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// buildAnswerKey emits one entry per question in body order. Objective
// questions contribute the letter of their correct alternative; essay
// questions the sanitized expected answer. Missing data degrades to the
// sentinel, never to a failure.
func (a *Assembler) buildAnswerKey(order []*types.Question) string {
	var b strings.Builder
	b.WriteString("\\begin{enumerate}\n")
	for _, q := range order {
		b.WriteString("\\item ")
		b.WriteString(a.answerFor(q))
		b.WriteString("\n")
	}
	b.WriteString("\\end{enumerate}\n")
	return b.String()
}

func (a *Assembler) answerFor(q *types.Question) string {
	switch q.Kind {
	case types.KindObjective:
		if n := q.CorrectCount(); n > 1 {
			a.logger.Warn(context.Background(), nil, "question has multiple alternatives flagged correct, using the first",
				"question", q.ID, "flagged", n)
		}
		letter, ok := q.CorrectLetter()
		if !ok {
			a.logger.Warn(context.Background(), nil, "objective question has no correct alternative flagged",
				"question", q.ID)
			return AnswerNotAvailable
		}
		return letter
	case types.KindEssay:
		if q.EssayAnswer == "" {
			return AnswerNotAvailable
		}
		return a.sanitizer.Sanitize(q.EssayAnswer)
	default:
		a.logger.Warn(context.Background(), nil, "question has unknown kind",
			"question", q.ID, "kind", string(q.Kind))
		return AnswerNotAvailable
	}
}

// Fragment identifiers used in logs when assembly is traced at debug level.
func describeOrder(order []*types.Question) string {
	ids := make([]string, len(order))
	for i, q := range order {
		ids[i] = fmt.Sprintf("%d", q.ID)
	}
	return strings.Join(ids, ",")
}
