package entity

import (
	"testing"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Get(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("Returns known category", func(t *testing.T) {
		// When: looking up the ocean puzzle
		puzzle, err := catalog.Get(CategoryOcean)

		// Then: its static data is returned
		require.NoError(t, err)
		assert.Equal(t, "ocean-puzzle.jpg", puzzle.Asset)
		assert.Equal(t, DefaultPuzzlePoints, puzzle.Points)
		assert.NotEmpty(t, puzzle.Fact)
	})

	t.Run("Returns ErrUnknownCategory for unknown category", func(t *testing.T) {
		// When: looking up a category that does not exist
		_, err := catalog.Get("desert")

		// Then: ErrUnknownCategory should be returned
		require.ErrorIs(t, err, apperror.ErrUnknownCategory)
	})
}

func TestCatalog_Others(t *testing.T) {
	// Given: the default catalog
	catalog := DefaultCatalog()

	// When: asking for every category other than forest
	others := catalog.Others(CategoryForest)

	// Then: the remaining three are returned in order
	assert.Equal(t, []Category{CategoryOcean, CategoryWildlife, CategoryClimate}, others)
}

func TestCatalog_List(t *testing.T) {
	// Given: a catalog built with a duplicate entry
	catalog := NewCatalog(Puzzle{Category: CategoryForest}, Puzzle{Category: CategoryForest, Name: "dup"})

	// When: listing it and mutating the result
	list := catalog.List()
	list[0].Name = "changed"

	// Then: the duplicate is dropped and the catalog is unaffected
	require.Len(t, list, 1)
	puzzle, err := catalog.Get(CategoryForest)
	require.NoError(t, err)
	assert.Empty(t, puzzle.Name)
}
