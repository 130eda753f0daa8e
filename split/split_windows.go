package split

import (
	"strings"
	"unicode/utf8"
)

// Split follows the Windows CommandLineToArgvW rules: arguments separate on
// unquoted spaces and tabs, a doubled quote inside a quoted argument embeds a
// literal quote, and backslashes are literal unless they precede a quote, in
// which case each pair yields one backslash and an odd trailing backslash
// escapes the quote.
func Split(s string) ([]string, error) {
	args := []string{}
	var bldr strings.Builder
	inQuotes := false
	pending := false

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case r == '\\':
			backslashes := 0
			for i < len(s) && s[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(s) && s[i] == '"' {
				bldr.WriteString(strings.Repeat(`\`, backslashes/2))
				if backslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					bldr.WriteByte('"')
				}
				i++
			} else {
				bldr.WriteString(strings.Repeat(`\`, backslashes))
			}
			pending = true
			continue

		case r == '"':
			if inQuotes && i+1 < len(s) && s[i+1] == '"' {
				bldr.WriteByte('"')
				i += 2
			} else {
				inQuotes = !inQuotes
				i++
			}
			pending = true
			continue

		case !inQuotes && (r == ' ' || r == '\t' || r == '\r' || r == '\n'):
			if pending {
				args = append(args, bldr.String())
				bldr.Reset()
				pending = false
			}

		default:
			bldr.WriteRune(r)
			pending = true
		}
		i += size
	}

	if pending {
		args = append(args, bldr.String())
	}
	return args, nil
}
