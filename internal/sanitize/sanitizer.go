// Package sanitize neutralizes dangerous LaTeX markup inside untrusted
// question content before it reaches the assembled document. The command
// denylist and the shell-escape marker are injected configuration, not
// process-wide state, so alternate denylists can be exercised in tests.
package sanitize

import (
	"context"
	"strings"

	"github.com/lucasmarquesb-del/sistema-de-questoes-sub001/internal/logging"
)

// ShellEscapeToken is the primitive that lets LaTeX spawn a shell. Any
// occurrence that survives denylist removal is replaced with Marker so the
// output retains visible evidence of the attempt.
const ShellEscapeToken = `\write18`

// DefaultMarker is the visible replacement for a neutralized shell-escape
// token.
const DefaultMarker = "[comando-bloqueado]"

// DefaultDenylist covers the LaTeX commands that can execute code or reach
// the filesystem from inside user-authored content. Names are matched
// case-insensitively, without the leading backslash.
func DefaultDenylist() []string {
	return []string{
		"input",
		"include",
		"immediate",
		"openout",
		"openin",
		"read",
		"catcode",
		"csname",
		"usepackage",
		"def",
		"loop",
	}
}

// Config holds the immutable sanitizer configuration.
type Config struct {
	// Denylist is the list of command names to strip (no leading backslash)
	Denylist []string
	// Marker replaces any literal shell-escape token left after stripping
	Marker string
}

// Sanitizer removes denylisted commands from free text. Safe for concurrent
// use; Sanitize never fails.
type Sanitizer struct {
	denylist []string
	marker   string
	logger   logging.Logger
}

// NewSanitizer builds a sanitizer from config. Zero-value fields fall back
// to the defaults.
func NewSanitizer(config Config, logger logging.Logger) *Sanitizer {
	denylist := config.Denylist
	if denylist == nil {
		denylist = DefaultDenylist()
	}
	marker := config.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	if logger == nil {
		logger = logging.Nop()
	}
	lowered := make([]string, len(denylist))
	for i, name := range denylist {
		lowered[i] = lowerASCII(name)
	}
	return &Sanitizer{
		denylist: lowered,
		marker:   marker,
		logger:   logger.WithComponent("sanitizer"),
	}
}

// Sanitize removes every case-insensitive occurrence of each denylisted
// command together with at most one trailing brace- or bracket-delimited
// argument group. A literal shell-escape token that survives removal is
// replaced with the marker rather than silently dropped. Empty input yields
// empty output; the function never fails.
func (s *Sanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}

	for _, name := range s.denylist {
		text = stripCommand(text, name)
	}

	if idx := indexFold(text, ShellEscapeToken); idx >= 0 {
		s.logger.Warn(context.Background(), nil, "shell-escape token found in content, neutralizing",
			"token", ShellEscapeToken)
		text = replaceFold(text, ShellEscapeToken, s.marker)
	}

	return text
}

// stripCommand removes every `\name` occurrence plus one following argument
// group. Matching is case-insensitive and requires a word boundary after the
// name so stripping `\read` leaves `\readX` alone only when X extends the
// command name.
func stripCommand(text, name string) string {
	var b strings.Builder
	b.Grow(len(text))
	lower := lowerASCII(text)
	target := `\` + name

	i := 0
	for i < len(text) {
		j := strings.Index(lower[i:], target)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		j += i
		end := j + len(target)
		// TeX command names are letters only: \inputfile is a different
		// command than \input, but \openout5 is \openout plus a stream
		// number.
		if end < len(text) && isCommandLetter(rune(text[end])) {
			b.WriteString(text[i : j+1])
			i = j + 1
			continue
		}
		b.WriteString(text[i:j])
		i = skipArgumentGroup(text, end)
	}
	return b.String()
}

func isCommandLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// skipArgumentGroup advances past optional whitespace and at most one
// balanced {...} or [...] group starting at pos.
func skipArgumentGroup(text string, pos int) int {
	i := pos
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) {
		return pos
	}

	var open, close byte
	switch text[i] {
	case '{':
		open, close = '{', '}'
	case '[':
		open, close = '[', ']'
	default:
		return pos
	}

	depth := 0
	for j := i; j < len(text); j++ {
		switch text[j] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	// Unbalanced group: drop through to end of text.
	return len(text)
}

// lowerASCII lowercases ASCII letters only. Unlike strings.ToLower it is
// length-preserving, so indexes found in the lowered copy stay valid in the
// original string even when it carries runes whose full Unicode case mapping
// changes byte width (U+0130, U+212A). Command names and the shell-escape
// token are ASCII, so ASCII folding is the case-insensitivity that matters.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// indexFold reports the first case-insensitive index of substr in s, or -1.
func indexFold(s, substr string) int {
	return strings.Index(lowerASCII(s), lowerASCII(substr))
}

// replaceFold replaces all case-insensitive occurrences of old with new.
func replaceFold(s, old, new string) string {
	var b strings.Builder
	b.Grow(len(s))
	lower := lowerASCII(s)
	target := lowerASCII(old)

	i := 0
	for i < len(s) {
		j := strings.Index(lower[i:], target)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		j += i
		b.WriteString(s[i:j])
		b.WriteString(new)
		i = j + len(target)
	}
	return b.String()
}
