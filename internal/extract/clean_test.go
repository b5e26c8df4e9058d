package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "Hello \n\t  world", "Hello world"},
		{"nbsp counts as whitespace", "Hello\u00a0\u00a0world", "Hello world"},
		{"keeps allowed punctuation", "Hi, there! Really? Yes - ok.", "Hi, there! Really? Yes - ok."},
		{"drops other symbols", "Price: $5 (approx) #1 @home", "Price 5 approx 1 home"},
		{"keeps unicode letters", "Café über naïve", "Café über naïve"},
		{"keeps underscore and digits", "snake_case 42", "snake_case 42"},
		{"trims", "   padded   ", "padded"},
		{"collapse before strip leaves double spaces", "a * b", "a  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("", 5))
	// Runes, not bytes.
	assert.Equal(t, "éé...", Truncate("ééé", 2))
}

func TestCap(t *testing.T) {
	assert.Equal(t, "abc", Cap("abc", 5))
	assert.Equal(t, "ab", Cap("abc", 2))
	assert.Equal(t, "é", Cap("éé", 1))
}
