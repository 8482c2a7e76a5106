package assemble

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/render"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/sanitize"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
)

const testTemplate = `HEAD:{{HEADER}}
TITLE:{{TITLE}}
INST:{{INSTRUCTIONS}}
{{COLUMN_BEGIN}}
{{BODY}}
{{COLUMN_END}}
KEY:{{ANSWER_KEY}}
`

func newTestAssembler(t *testing.T, rng *rand.Rand) *Assembler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "padrao"+TemplateExt), []byte(testTemplate), 0o644))

	sanitizer := sanitize.NewSanitizer(sanitize.Config{}, nil)
	renderer := render.NewRenderer(sanitizer, render.Options{ImageRoot: t.TempDir()}, nil)
	return NewAssembler(NewTemplateStore(dir), renderer, sanitizer, rng, nil)
}

func listOf(n int) *types.QuestionList {
	list := &types.QuestionList{
		Title:        "Prova de Teste",
		Header:       "Escola",
		Instructions: "Leia com atenção.",
	}
	letters := []string{"A", "B", "C", "D", "E"}
	for i := 0; i < n; i++ {
		correct := i % len(letters)
		q := types.Question{
			ID:        int64(i + 1),
			Kind:      types.KindObjective,
			Statement: fmt.Sprintf("Enunciado da questão %d", i+1),
		}
		for j, letter := range letters {
			q.Alternatives = append(q.Alternatives, types.Alternative{
				Letter:  letter,
				Text:    fmt.Sprintf("alternativa %s da questão %d", letter, i+1),
				Correct: j == correct,
			})
		}
		list.Questions = append(list.Questions, q)
	}
	return list
}

func defaultOpts() types.ExportOptions {
	return types.ExportOptions{
		Template:         "padrao",
		Mode:             types.ModeManual,
		Columns:          1,
		IncludeAnswerKey: true,
		DefaultScale:     0.5,
	}
}

func TestAssemble_FillsPlaceholders(t *testing.T) {
	a := newTestAssembler(t, nil)
	got, err := a.Assemble(listOf(2), defaultOpts())
	require.NoError(t, err)

	assert.Contains(t, got, "HEAD:Escola")
	assert.Contains(t, got, "TITLE:Prova de Teste")
	assert.Contains(t, got, "INST:Leia com atenção.")
	assert.Contains(t, got, "Enunciado da questão 1")
	assert.Contains(t, got, "Enunciado da questão 2")
	assert.NotContains(t, got, "{{", "all tokens must be consumed")
}

func TestAssemble_TemplateNotFound(t *testing.T) {
	a := newTestAssembler(t, nil)
	opts := defaultOpts()
	opts.Template = "inexistente"

	_, err := a.Assemble(listOf(1), opts)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTemplateNotFound), "got %v", err)
}

func TestAssemble_ColumnWrapper(t *testing.T) {
	a := newTestAssembler(t, nil)

	opts := defaultOpts()
	opts.Columns = 2
	got, err := a.Assemble(listOf(1), opts)
	require.NoError(t, err)
	assert.Contains(t, got, "\\begin{multicols}{2}")
	assert.Contains(t, got, "\\end{multicols}")

	opts.Columns = 1
	got, err = a.Assemble(listOf(1), opts)
	require.NoError(t, err)
	assert.NotContains(t, got, "multicols")
}

func TestAssemble_AnswerKeyMatchesStoredOrder(t *testing.T) {
	a := newTestAssembler(t, nil)
	got, err := a.Assemble(listOf(3), defaultOpts())
	require.NoError(t, err)

	key := got[strings.Index(got, "KEY:"):]
	assert.Equal(t, []string{"A", "B", "C"}, answerLetters(key, 3))
}

func TestAssemble_AnswerKeySentinelWhenNoCorrectFlag(t *testing.T) {
	a := newTestAssembler(t, nil)
	list := listOf(2)
	for i := range list.Questions[1].Alternatives {
		list.Questions[1].Alternatives[i].Correct = false
	}

	got, err := a.Assemble(list, defaultOpts())
	require.NoError(t, err)

	key := got[strings.Index(got, "KEY:"):]
	assert.Equal(t, []string{"A", AnswerNotAvailable}, answerLetters(key, 2),
		"a malformed question degrades to the sentinel, not a failure")
}

func TestAssemble_EssayAnswerKey(t *testing.T) {
	a := newTestAssembler(t, nil)
	list := &types.QuestionList{
		Title: "Dissertativa",
		Questions: []types.Question{
			{ID: 1, Kind: types.KindEssay, Statement: "Q1", EssayAnswer: "Resposta um"},
			{ID: 2, Kind: types.KindEssay, Statement: "Q2"},
		},
	}

	got, err := a.Assemble(list, defaultOpts())
	require.NoError(t, err)

	key := got[strings.Index(got, "KEY:"):]
	assert.Contains(t, key, "Resposta um")
	assert.Contains(t, key, AnswerNotAvailable)
}

func TestAssemble_NoAnswerKeyWhenDisabled(t *testing.T) {
	a := newTestAssembler(t, nil)
	opts := defaultOpts()
	opts.IncludeAnswerKey = false

	got, err := a.Assemble(listOf(2), opts)
	require.NoError(t, err)
	assert.Contains(t, got, "KEY:\n", "answer-key token filled with empty string")
}

// TestAssemble_ShuffleKeepsKeyAligned is the central correctness invariant:
// whatever permutation the shuffle produces, the Nth answer-key entry refers
// to the question rendered at body position N.
func TestAssemble_ShuffleKeepsKeyAligned(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		a := newTestAssembler(t, rand.New(rand.NewSource(seed)))

		list := listOf(5)
		opts := defaultOpts()
		opts.Shuffle = true

		got, err := a.Assemble(list, opts)
		require.NoError(t, err)

		bodyOrder := questionOrderFromBody(t, got, 5)
		key := got[strings.Index(got, "KEY:"):]
		letters := answerLetters(key, 5)

		expected := []string{"A", "B", "C", "D", "E"}
		for pos, qIdx := range bodyOrder {
			assert.Equal(t, expected[qIdx], letters[pos],
				"seed %d: key position %d must match body position %d (question %d)",
				seed, pos, pos, qIdx+1)
		}
	}
}

func TestAssemble_ShuffleDoesNotMutateStoredOrder(t *testing.T) {
	a := newTestAssembler(t, rand.New(rand.NewSource(42)))
	list := listOf(5)
	opts := defaultOpts()
	opts.Shuffle = true

	_, err := a.Assemble(list, opts)
	require.NoError(t, err)

	for i := range list.Questions {
		assert.Equal(t, int64(i+1), list.Questions[i].ID, "input list order is caller-owned")
	}
}

func TestTemplateStore_List(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"+TemplateExt), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"+TemplateExt), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	names, err := NewTemplateStore(dir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestTemplateStore_RejectsTraversal(t *testing.T) {
	s := NewTemplateStore(t.TempDir())
	for _, name := range []string{"../evil", "a/b", `a\b`, ""} {
		_, err := s.Load(name)
		assert.True(t, errors.IsCode(err, errors.ErrCodeTemplateNotFound), "name %q", name)
	}
}

// questionOrderFromBody extracts the zero-based question indexes in body
// order by scanning for the statement markers.
func questionOrderFromBody(t *testing.T, doc string, n int) []int {
	t.Helper()
	body := doc[:strings.Index(doc, "KEY:")]

	type hit struct{ pos, idx int }
	var hits []hit
	for i := 0; i < n; i++ {
		marker := fmt.Sprintf("Enunciado da questão %d", i+1)
		pos := strings.Index(body, marker)
		require.GreaterOrEqual(t, pos, 0, "question %d missing from body", i+1)
		hits = append(hits, hit{pos, i})
	}
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	order := make([]int, n)
	for i, h := range hits {
		order[i] = h.idx
	}
	return order
}

// answerLetters pulls the n \item entries out of the answer-key block.
func answerLetters(key string, n int) []string {
	var letters []string
	for _, line := range strings.Split(key, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "\\item "); ok {
			letters = append(letters, strings.TrimSpace(rest))
		}
	}
	if len(letters) > n {
		letters = letters[:n]
	}
	return letters
}
