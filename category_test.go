package aetherbox

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection(CategoryInfo, CategorySettings)

	_, ok := sel.Active()
	assert.False(t, ok, "nothing selected initially")

	sel.Toggle(CategoryInfo)
	id, ok := sel.Active()
	require.True(t, ok)
	assert.Equal(t, CategoryInfo, id)
	assert.True(t, sel.IsOpen(CategoryInfo))

	// Switching clears the previous flag
	sel.Toggle(CategorySettings)
	id, ok = sel.Active()
	require.True(t, ok)
	assert.Equal(t, CategorySettings, id)
	assert.False(t, sel.IsOpen(CategoryInfo))
	assert.True(t, sel.IsOpen(CategorySettings))

	// Clicking the active category again clears the selection
	sel.Toggle(CategorySettings)
	_, ok = sel.Active()
	assert.False(t, ok)
	assert.False(t, sel.IsOpen(CategorySettings))
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection(CategoryInfo, CategorySettings)
	sel.Toggle(CategoryInfo)
	sel.Clear()

	_, ok := sel.Active()
	assert.False(t, ok)
	assert.False(t, sel.IsOpen(CategoryInfo))
}

func TestSelectionUnknownCategoryPanics(t *testing.T) {
	sel := NewSelection(CategoryInfo)
	assert.Panics(t, func() { sel.Toggle(CategorySettings) })
}

// Any click sequence keeps at most one flag set, and it always matches the
// active category.
func TestSelectionStaysExclusive(t *testing.T) {
	ids := []CategoryID{CategoryInfo, CategorySettings, 2, 3}
	sel := NewSelection(ids...)
	rng := rand.New(rand.NewPCG(1, 2))

	var last CategoryID
	hasLast := false
	for i := 0; i < 1000; i++ {
		id := ids[rng.IntN(len(ids))]
		sel.Toggle(id)

		// Model: clicking the selected category clears it, anything else selects
		if hasLast && last == id {
			hasLast = false
		} else {
			last, hasLast = id, true
		}

		active, ok := sel.Active()
		require.Equal(t, hasLast, ok, "step %d", i)
		open := 0
		for _, other := range ids {
			if sel.IsOpen(other) {
				open++
				require.True(t, ok)
				require.Equal(t, active, other, "step %d", i)
			}
		}
		if ok {
			require.Equal(t, last, active, "step %d", i)
			require.Equal(t, 1, open, "step %d", i)
		} else {
			require.Zero(t, open, "step %d", i)
		}
	}
}
