package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeUTF8 removes invalid UTF-8 sequences from string.
// PDF extraction occasionally yields broken bytes that would poison the
// embedding request and the persisted index.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// splitText splits a long string into chunks of approximately chunkSize runes
// with an overlap so context spanning a chunk boundary is not lost.
func splitText(text string, chunkSize, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for i := 0; i < len(runes); i += step {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
		if end == len(runes) {
			break
		}
	}

	return chunks
}

// stripQuotes trims whitespace and surrounding quote characters.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return s
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// zeroPadTime left-pads a time value with zeros to at least five characters,
// so "9:00" becomes "09:00".
func zeroPadTime(t string) string {
	t = strings.TrimSpace(t)
	for utf8.RuneCountInString(t) < 5 {
		t = "0" + t
	}
	return t
}

// titleKey renders a draft field name for display: every alphabetic run is
// capitalized, underscores kept ("booking_type" -> "Booking_Type").
func titleKey(key string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range key {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
