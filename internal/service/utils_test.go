package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPadTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already padded", "09:00", "09:00"},
		{"single digit hour", "9:00", "09:00"},
		{"with whitespace", " 9:00 ", "09:00"},
		{"afternoon slot", "14:00", "14:00"},
		{"longer than five", "09:00:00", "09:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, zeroPadTime(tt.input))
		})
	}
}

func TestSplitText(t *testing.T) {
	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := splitText("hello world", 1000, 200)
		assert.Equal(t, []string{"hello world"}, chunks)
	})

	t.Run("long text overlaps between chunks", func(t *testing.T) {
		text := strings.Repeat("a", 90) + strings.Repeat("b", 90)
		chunks := splitText(text, 100, 20)

		assert.Len(t, chunks, 2)
		assert.Len(t, []rune(chunks[0]), 100)
		// Last 20 runes of one chunk open the next
		assert.Equal(t, chunks[0][80:], chunks[1][:20])
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		text := strings.Repeat("я", 150)
		chunks := splitText(text, 100, 0)

		assert.Len(t, chunks, 2)
		assert.Equal(t, 100, len([]rune(chunks[0])))
		assert.Equal(t, 50, len([]rune(chunks[1])))
	})
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "John Doe", stripQuotes(`  "John Doe" `))
	assert.Equal(t, "John Doe", stripQuotes(`'John Doe'`))
	assert.Equal(t, "plain", stripQuotes("plain"))
}

func TestTitleKey(t *testing.T) {
	assert.Equal(t, "Booking_Type", titleKey("booking_type"))
	assert.Equal(t, "Name", titleKey("name"))
	assert.Equal(t, "Doctor_Name", titleKey("doctor_name"))
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "clean text", sanitizeUTF8("clean text"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
}

func TestContainsDigit(t *testing.T) {
	assert.True(t, containsDigit("call me at 555"))
	assert.False(t, containsDigit("no numbers here"))
}
