// Package textutil holds small string helpers used around the text engine:
// ASCII case mapping, glob matching, byte escaping, tokenizing, replacement
// and shell-style quoting.
package textutil

import (
	"fmt"
	"strings"

	"github.com/tidwall/match"
)

// ASCIILower maps 'A'..'Z' to 'a'..'z' and leaves every other byte alone,
// including the bytes of multi-byte sequences.
func ASCIILower(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

// ASCIIUpper maps 'a'..'z' to 'A'..'Z' and leaves every other byte alone.
func ASCIIUpper(s string) string {
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < lo || c > hi {
			continue
		}
		if b == nil {
			b = []byte(s)
		}
		b[i] = byte(int(c) + delta)
	}
	if b == nil {
		return s
	}
	return string(b)
}

// Match reports whether text matches the glob pattern. '*' matches any run
// of characters and '?' matches one character. A leading '!' negates the
// rest of the pattern.
func Match(pattern, text string) bool {
	if rest, ok := strings.CutPrefix(pattern, "!"); ok {
		return !Match(rest, text)
	}
	return match.Match(text, pattern)
}

// Hex escapes control bytes and bytes at or above 0x7F as \xHH, leaving
// printable ASCII unchanged.
func Hex(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c >= 0x7F {
			fmt.Fprintf(&sb, `\x%02X`, c)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Tokenize splits s on spaces. Runs of spaces separate tokens and produce
// no empty tokens. Other whitespace is part of a token.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' })
}

// ReplaceOne replaces the first occurrence of from with to.
func ReplaceOne(s, from, to string) string {
	return strings.Replace(s, from, to, 1)
}

// ReplaceAll replaces every non-overlapping occurrence of from with to,
// scanning left to right. An empty from leaves s unchanged.
func ReplaceAll(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}

// Quote wraps s in double quotes without escaping.
func Quote(s string) string {
	return `"` + s + `"`
}

// shellMeta are the characters that make QuoteIfNeeded quote.
const shellMeta = ` "'<>&|?*$;`

// QuoteIfNeeded quotes s when it is empty or contains a space, quote or
// shell metacharacter.
func QuoteIfNeeded(s string) string {
	if s != "" && !strings.ContainsAny(s, shellMeta) {
		return s
	}
	return Quote(s)
}

// Substitute replaces the first '%' in format with the fmt rendering of
// value. A format without '%' is returned unchanged.
func Substitute(format string, value any) string {
	return ReplaceOne(format, "%", fmt.Sprint(value))
}
