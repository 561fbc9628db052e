package tags

import (
	"errors"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCanonicalText(t *testing.T) {
	mismatches, err := Verify("!_TAG_FILE_SORTED\t1\t/sorted/\nn\tf\t1\nFoo\tfoo.rb\t1;\"\tc\tmodule:Bar\n")
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerifyReportsNonCanonicalLines(t *testing.T) {
	text := "n\tf\t1;\"\n" +
		"ok\tf\t2\n" +
		"m\tf\t3;\"\tb:2\ta:1\n"

	mismatches, err := Verify(text)
	require.NoError(t, err)
	require.Len(t, mismatches, 2)

	assert.Equal(t, 1, mismatches[0].Line)
	assert.Equal(t, "n\tf\t1", mismatches[0].Encoded)

	assert.Equal(t, 3, mismatches[1].Line)
	assert.Equal(t, "m\tf\t3;\"\ta:1\tb:2", mismatches[1].Encoded)

	dmp := diffmatchpatch.New()
	for _, m := range mismatches {
		assert.Equal(t, m.Original, dmp.DiffText1(m.Diffs))
		assert.Equal(t, m.Encoded, dmp.DiffText2(m.Diffs))
	}
}

func TestVerifyPropagatesParseErrors(t *testing.T) {
	_, err := Verify("n\tf\t1\ngarbage")
	assert.True(t, errors.Is(err, ErrFailedParse))
}
