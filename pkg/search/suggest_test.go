package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmart-io/store/pkg/catalog"
)

func TestSuggestMatchesTitleAndCategory(t *testing.T) {
	ix := BuildIndex(catalog.Seed())

	byTitle := ix.Suggest("kindle")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "p007", byTitle[0].ID)

	// "Electronics" is a category display name.
	byCategory := ix.Suggest("electronics")
	require.NotEmpty(t, byCategory)
	for _, s := range byCategory {
		assert.Equal(t, "Electronics", s.Category)
	}
}

func TestSuggestCapsResults(t *testing.T) {
	ix := BuildIndex(catalog.Seed())

	// A bare vowel matches most titles.
	out := ix.Suggest("e")
	assert.Len(t, out, SUGGESTION_LIMIT)
}

func TestSuggestEmptyQuery(t *testing.T) {
	ix := BuildIndex(catalog.Seed())

	assert.Nil(t, ix.Suggest(""))
	assert.Nil(t, ix.Suggest("   "))
}
