package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySelectionStrictParsing(t *testing.T) {
	t.Run("parses comma string with stray whitespace", func(t *testing.T) {
		ids, err := CategoriesFromString("1, 2,3").IDs()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("collapses duplicates", func(t *testing.T) {
		ids, err := CategoriesFromString("2,1,2").IDs()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, ids)
	})

	t.Run("rejects trailing garbage", func(t *testing.T) {
		_, err := CategoriesFromString("1,abc").IDs()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "categories")
	})

	t.Run("rejects empty selection", func(t *testing.T) {
		_, err := CategoriesFromString("").IDs()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "categories")
	})

	t.Run("accepts structured ids", func(t *testing.T) {
		ids, err := CategoriesFromInts([]int{3, 1}).IDs()
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1}, ids)
	})

	t.Run("rejects empty structured ids", func(t *testing.T) {
		_, err := CategoriesFromInts(nil).IDs()
		require.Error(t, err)
	})
}

func TestCategorySelectionFilterParsing(t *testing.T) {
	t.Run("drops bad tokens", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, CategoriesFromString("1,abc,3").FilterIDs())
	})

	t.Run("empty string yields no filter", func(t *testing.T) {
		assert.Nil(t, CategoriesFromString("").FilterIDs())
	})

	t.Run("all-invalid tokens yield no filter", func(t *testing.T) {
		assert.Nil(t, CategoriesFromString("a,b").FilterIDs())
	})
}

func TestCategorySelectionJSON(t *testing.T) {
	t.Run("decodes comma string", func(t *testing.T) {
		var c CategorySelection
		require.NoError(t, json.Unmarshal([]byte(`"1, 2,3"`), &c))

		ids, err := c.IDs()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("decodes integer array", func(t *testing.T) {
		var c CategorySelection
		require.NoError(t, json.Unmarshal([]byte(`[4, 5]`), &c))

		ids, err := c.IDs()
		require.NoError(t, err)
		assert.Equal(t, []int{4, 5}, ids)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var c CategorySelection
		require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &c))
	})
}
