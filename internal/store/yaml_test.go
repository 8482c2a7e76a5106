package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/errors"
	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/types"
)

const validList = `title: Prova 1
header: Escola Exemplo
instructions: Sem consulta.
questions:
  - id: 1
    kind: OBJECTIVE
    statement: Quanto vale 2+2?
    alternatives:
      - {letter: A, text: "3"}
      - {letter: B, text: "4", correct: true}
  - id: 2
    kind: ESSAY
    statement: Disserte.
    essay_answer: Uma resposta.
`

func writeList(t *testing.T, dir, id, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+ListExt), []byte(content), 0o644))
}

func TestResolveList(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "prova-1", validList)

	list, err := NewDirResolver(dir).ResolveList(context.Background(), "prova-1")
	require.NoError(t, err)

	assert.Equal(t, "Prova 1", list.Title)
	require.Len(t, list.Questions, 2)
	assert.Equal(t, types.KindObjective, list.Questions[0].Kind)
	letter, ok := list.Questions[0].CorrectLetter()
	assert.True(t, ok)
	assert.Equal(t, "B", letter)
	assert.Equal(t, types.KindEssay, list.Questions[1].Kind)
}

func TestResolveList_NotFound(t *testing.T) {
	r := NewDirResolver(t.TempDir())
	_, err := r.ResolveList(context.Background(), "nada")
	assert.True(t, errors.IsCode(err, errors.ErrCodeListNotFound), "got %v", err)
}

func TestResolveList_RejectsTraversal(t *testing.T) {
	r := NewDirResolver(t.TempDir())
	for _, id := range []string{"../x", "a/b", `a\b`, ""} {
		_, err := r.ResolveList(context.Background(), id)
		assert.True(t, errors.IsCode(err, errors.ErrCodeListNotFound), "id %q", id)
	}
}

func TestParseList_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", "title: [unclosed"},
		{"missing title", "questions:\n  - {kind: ESSAY, statement: x}"},
		{"no questions", "title: t\nquestions: []"},
		{"unknown kind", "title: t\nquestions:\n  - {kind: WAT, statement: x}"},
		{"objective without alternatives", "title: t\nquestions:\n  - {kind: OBJECTIVE, statement: x}"},
		{"essay with alternatives", "title: t\nquestions:\n  - kind: ESSAY\n    statement: x\n    alternatives:\n      - {letter: A, text: y}"},
		{"missing statement", "title: t\nquestions:\n  - {kind: ESSAY, statement: \"\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseList("lista", []byte(tt.content))
			assert.True(t, errors.IsCode(err, errors.ErrCodeListInvalid), "got %v", err)
		})
	}
}

func TestDirResolver_List(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "a", validList)
	writeList(t, dir, "b", validList)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	ids, err := NewDirResolver(dir).List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
