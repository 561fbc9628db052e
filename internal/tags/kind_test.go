package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTablesAreBijective(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(string(lang), func(t *testing.T) {
			kinds := KindsFor(lang)
			require.NotEmpty(t, kinds)

			seen := make(map[KindName]rune)
			for c, name := range kinds {
				if prev, dup := seen[name]; dup {
					t.Fatalf("kind %s mapped from both %q and %q", name, prev, c)
				}
				seen[name] = c

				kind := KindFromChar(c, lang)
				assert.Equal(t, name, kind.Name)
				assert.Equal(t, c, kind.Char(lang))
			}
		})
	}
}

func TestKindFromCharIsLanguageScoped(t *testing.T) {
	assert.Equal(t, Named(KindMethod), KindFromChar('f', LanguageRuby))
	assert.Equal(t, Named(KindFunction), KindFromChar('f', LanguageGo))
	assert.Equal(t, Named(KindField), KindFromChar('f', LanguageJava))
	assert.Equal(t, Named(KindSingletonMethod), KindFromChar('S', LanguageRuby))
	assert.Equal(t, Named(KindSetter), KindFromChar('S', LanguageJavaScript))
}

func TestUnknownKindKeepsItsCharacter(t *testing.T) {
	tests := []struct {
		name string
		char rune
		lang Language
	}{
		{"unrecognised letter", 'Z', LanguageRuby},
		{"no language", 'c', LanguageNone},
		{"non-ascii", 'λ', LanguageGo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := KindFromChar(tt.char, tt.lang)
			assert.True(t, kind.IsUnknown())
			assert.False(t, kind.IsUndefined())
			assert.Equal(t, tt.char, kind.Char(tt.lang))
		})
	}
}

func TestUndefinedIsDistinctFromUnknown(t *testing.T) {
	var zero TokenKind
	assert.Equal(t, Undefined, zero)
	assert.True(t, Undefined.IsUndefined())
	assert.False(t, Undefined.IsUnknown())
	assert.Equal(t, rune(0), Undefined.Char(LanguageRuby))
	assert.NotEqual(t, Undefined, Unknown('x'))
	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, `unknown('x')`, Unknown('x').String())
}

func TestNamedKindOutsideItsLanguage(t *testing.T) {
	assert.Equal(t, 'c', Named(KindClass).Char(LanguageGo))
	assert.Equal(t, 's', Named(KindSingletonMethod).Char(LanguageNone))
}
