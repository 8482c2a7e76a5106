package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent strips combining marks after NFD decomposition, turning
// "Questões de Matemática" into "Questoes de Matematica".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a filesystem-safe base-name component from a list title:
// accents stripped, lowercased, runs of non-alphanumerics collapsed into
// single hyphens.
func Slug(title string) string {
	plain, _, err := transform.String(deaccent, title)
	if err != nil {
		plain = title
	}

	var b strings.Builder
	b.Grow(len(plain))
	lastHyphen := true
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
