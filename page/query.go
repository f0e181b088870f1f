package page

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Query parameter names
const (
	ParamName     = "name"
	ParamIdentity = "identity"
)

// Params are the page-load parameters the page reacts to
type Params struct {
	Name     string
	Identity string
}

// ParseQuery extracts Params from a full URL or a bare query string.
// Malformed pairs are skipped; the well-formed ones are still used.
func ParseQuery(raw string) Params {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}

	values, _ := url.ParseQuery(raw)
	return Params{
		Name:     values.Get(ParamName),
		Identity: values.Get(ParamIdentity),
	}
}

// FormatName title-cases a display name word by word.
// The value is URI-decoded once more, falling back to the raw text when it is
// not valid percent-encoding. It returns false when nothing is left to show.
func FormatName(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}

	decoded = strings.TrimSpace(decoded)
	if decoded == "" {
		return "", false
	}

	words := strings.Split(decoded, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " "), true
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(word string) string {
	if word == "" {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	return strings.ToUpper(word[:size]) + strings.ToLower(word[size:])
}

// Kickers returns the top and bottom kicker lines for a formatted name
func Kickers(name string) (top, bottom string) {
	top = fmt.Sprintf("%s, %s", name, DefaultTopKicker)
	bottom = fmt.Sprintf("%s… %s", name, DefaultBottomKicker)
	return top, bottom
}

// newlines normalises the newline encodings an identity value may use
var newlines = strings.NewReplacer("\r\n", "\n", `\r\n`, "\n", `\n`, "\n", "\r", "\n")

// IdentityLines splits an identity value into trimmed, non-empty lines.
// Both real newlines and escaped "\n" sequences separate lines.
func IdentityLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(newlines.Replace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
