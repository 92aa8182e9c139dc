package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPhoneticCode(t *testing.T) {
	tests := map[string]bool{
		"beer":   true,
		"BIER":   true,
		"beer4":  true,
		"4z":     true,
		"":       false,
		"1234":   false,
		"@[`{":   false,
		"  - _ ": false,
		"é":      false,
	}

	for in, want := range tests {
		assert.Equal(t, want, HasPhoneticCode(in), "HasPhoneticCode(%q)", in)
	}
}
