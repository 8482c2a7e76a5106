package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prova de Matemática", "prova-de-matematica"},
		{"Questões — Física II", "questoes-fisica-ii"},
		{"  espaços   extras  ", "espacos-extras"},
		{"já_com-pontuação!", "ja-com-pontuacao"},
		{"ABC123", "abc123"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
