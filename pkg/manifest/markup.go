package manifest

import (
	"strings"

	"github.com/pacak/semantic/pkg/doc"
	"github.com/pacak/semantic/pkg/errors"
)

// parseMarkup converts a paragraph string with minimal inline markup to
// styled fragments. Three markers are recognized: **bold**, *italic* and
// `code`. This is deliberately not markdown; there is no nesting and no
// escaping, and a marker without its closing counterpart is an error.
func parseMarkup(s string) ([]doc.Fragment, error) {
	var frags []doc.Fragment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			frags = append(frags, doc.Text(plain.String()))
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "**"):
			end := strings.Index(s[i+2:], "**")
			if end < 0 {
				return nil, errors.New(errors.ErrCodeInvalidMarkup, "unterminated ** in %q", s)
			}
			flush()
			frags = append(frags, doc.Literal(s[i+2:i+2+end]))
			i += end + 4
		case s[i] == '*':
			end := strings.IndexByte(s[i+1:], '*')
			if end < 0 {
				return nil, errors.New(errors.ErrCodeInvalidMarkup, "unterminated * in %q", s)
			}
			flush()
			frags = append(frags, doc.Metavar(s[i+1:i+1+end]))
			i += end + 2
		case s[i] == '`':
			end := strings.IndexByte(s[i+1:], '`')
			if end < 0 {
				return nil, errors.New(errors.ErrCodeInvalidMarkup, "unterminated ` in %q", s)
			}
			flush()
			frags = append(frags, doc.Mono(s[i+1:i+1+end]))
			i += end + 2
		default:
			plain.WriteByte(s[i])
			i++
		}
	}
	flush()
	return frags, nil
}
