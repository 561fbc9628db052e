package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKV(t *testing.T) {
	tests := []struct {
		input string
		key   string
		value string
		ok    bool
	}{
		{"class:Foo", "class", "Foo", true},
		{"typeref:typename:error", "typeref", "typename:error", true},
		{"file:", "file", "", true},
		{":v", "", "v", true},
		{"nocolon", "nocolon", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, ok := SplitKV(tt.input, ":")
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a :: b ", ":"))
	assert.Nil(t, SplitList("", ":"))
}
