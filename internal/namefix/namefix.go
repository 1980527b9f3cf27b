// Package namefix repairs mojibake in player names delivered by upstream
// feeds, where UTF-8 bytes were decoded as Latin-1 somewhere along the way
// ("JokiÄ" instead of "Jokić").
package namefix

import "unicode/utf8"

// Fix reverses a Latin-1 misdecode of UTF-8 text. Each rune of the input is
// reinterpreted as a single byte; if every rune fits in a byte and the
// resulting byte string is valid UTF-8, that string is returned. Otherwise
// the input was not mojibake and is returned unchanged, so Fix is safe to
// apply to every name unconditionally.
func Fix(s string) string {
	bytes := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return s
		}
		bytes = append(bytes, byte(r))
	}
	if !utf8.Valid(bytes) {
		return s
	}
	return string(bytes)
}
