package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_GetMissingReturnsNotFound(t *testing.T) {
	tb := newTable()

	_, err := tb.get("nope")
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Identifier)
}

func TestTable_SetThenGet(t *testing.T) {
	tb := newTable()
	tb.set("k", Value("v"))

	require.True(t, tb.exists("k"))
	m, err := tb.get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", m(nil, "k"))
}

func TestTable_SetReplaces(t *testing.T) {
	tb := newTable()
	tb.set("k", Value(1))
	tb.set("k", Value(2))

	m, err := tb.get("k")
	require.NoError(t, err)
	assert.Equal(t, 2, m(nil, "k"))
	assert.Len(t, tb.identifiers(), 1, "a table never holds two entries for one identifier")
}

func TestWildcardOf(t *testing.T) {
	assert.Equal(t, "a", wildcardOf("a b"))
	assert.Equal(t, "a", wildcardOf("a b c"), "only the first space splits")
	assert.Equal(t, "plain", wildcardOf("plain"))
}
