// Package types provides common type definitions used throughout the questoes CLI.
// This package contains shared types to avoid circular dependencies between packages.
package types

// QuestionKind discriminates between objective (multiple-choice) and
// essay (open-answer) questions.
type QuestionKind string

const (
	KindObjective QuestionKind = "OBJECTIVE"
	KindEssay     QuestionKind = "ESSAY"
)

// Alternative is a single answer option of an objective question.
type Alternative struct {
	// Letter is the option label in its stored position (A-E)
	Letter string `yaml:"letter"`
	// Text is the free-text body authored by the question editor
	Text string `yaml:"text"`
	// Correct flags the alternative counted in the answer key
	Correct bool `yaml:"correct"`
	// ImagePath optionally references an image asset, relative to the image root
	ImagePath string `yaml:"image,omitempty"`
	// ImageScale overrides the default image scale when > 0
	ImageScale float64 `yaml:"scale,omitempty"`
}

// Question is one exam question as supplied by the persistence layer.
// The export pipeline treats it as read-only input.
type Question struct {
	// ID is the upstream identifier, used only for logging
	ID int64 `yaml:"id"`
	// Statement is the free-text question body (may contain LaTeX markup)
	Statement string `yaml:"statement"`
	// Kind selects objective or essay rendering
	Kind QuestionKind `yaml:"kind"`
	// Alternatives are present for objective questions only, in stored order
	Alternatives []Alternative `yaml:"alternatives,omitempty"`
	// Resolution is an optional worked solution shown when requested
	Resolution string `yaml:"resolution,omitempty"`
	// EssayAnswer is the expected answer outline for essay questions
	EssayAnswer string `yaml:"essay_answer,omitempty"`
	// ImagePath optionally references an image asset, relative to the image root
	ImagePath string `yaml:"image,omitempty"`
	// ImageScale overrides the default image scale when > 0
	ImageScale float64 `yaml:"scale,omitempty"`
}

// CorrectLetter returns the letter of the first alternative flagged correct
// and whether any alternative is flagged at all. The upstream layer promises
// exactly one flagged alternative for objective questions, but that invariant
// is not enforced here: zero flags yield ok=false and the caller emits a
// sentinel answer-key entry instead of aborting the export.
func (q *Question) CorrectLetter() (string, bool) {
	for i := range q.Alternatives {
		if q.Alternatives[i].Correct {
			return q.Alternatives[i].Letter, true
		}
	}
	return "", false
}

// CorrectCount reports how many alternatives are flagged correct. Values
// other than 1 on an objective question indicate malformed upstream data and
// are logged as validation warnings by the assembler.
func (q *Question) CorrectCount() int {
	n := 0
	for i := range q.Alternatives {
		if q.Alternatives[i].Correct {
			n++
		}
	}
	return n
}

// QuestionList is an ordered, named collection of questions designated for
// export as a single document. Stored order is the default rendering and
// answer-key order.
type QuestionList struct {
	// Title names the list and seeds the output base name
	Title string `yaml:"title"`
	// Header is optional institution/course text placed above the title
	Header string `yaml:"header,omitempty"`
	// Instructions is optional exam-instructions text
	Instructions string `yaml:"instructions,omitempty"`
	// Questions in significant order
	Questions []Question `yaml:"questions"`
}

// ExportMode selects between compiling a PDF and emitting raw source.
type ExportMode string

const (
	// ModeDirect invokes the external compiler and returns a PDF artifact.
	ModeDirect ExportMode = "direct"
	// ModeManual writes the assembled source file and never spawns a compiler.
	ModeManual ExportMode = "manual"
)

// ExportOptions configures a single export invocation. The value is treated
// as immutable for the duration of the call.
type ExportOptions struct {
	// Template is the template identifier (file stem in the template directory)
	Template string
	// Mode selects direct (compile) or manual (source only) export
	Mode ExportMode
	// Columns is the body column layout: 1 or 2
	Columns int
	// IncludeAnswerKey appends the answer key section
	IncludeAnswerKey bool
	// IncludeResolution renders per-question worked solutions
	IncludeResolution bool
	// Shuffle randomizes question order; the answer key follows the same order
	Shuffle bool
	// DefaultScale is the image scale used when a question does not set one
	DefaultScale float64
	// OutputDir receives the final artifact
	OutputDir string
}
