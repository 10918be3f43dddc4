package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApertureWindow_Membership(t *testing.T) {
	t.Run("prefix_of_ranked_nodes_is_inside", func(t *testing.T) {
		w := NewApertureWindow(2)
		w.SetCount(4)
		assert.True(t, w.Membership(0))
		assert.True(t, w.Membership(1))
		assert.False(t, w.Membership(2))
		assert.False(t, w.Membership(3))
	})

	t.Run("out_of_range_indexes_are_outside", func(t *testing.T) {
		w := NewApertureWindow(2)
		w.SetCount(4)
		assert.False(t, w.Membership(-1))
		assert.False(t, w.Membership(100))
	})

	t.Run("width_is_clamped_to_node_count", func(t *testing.T) {
		w := NewApertureWindow(10)
		w.SetCount(3)
		assert.Equal(t, 3, w.WindowSize())
		assert.True(t, w.Membership(2))
		assert.False(t, w.Membership(3))
	})

	t.Run("no_nodes_means_empty_window", func(t *testing.T) {
		w := NewApertureWindow(5)
		assert.Equal(t, 0, w.WindowSize())
		assert.False(t, w.Membership(0))
	})
}

func TestApertureWindow_Resize(t *testing.T) {
	t.Run("shrink_pushes_tail_nodes_outside", func(t *testing.T) {
		w := NewApertureWindow(3)
		w.SetCount(3)
		assert.True(t, w.Membership(2))
		w.SetWidth(1)
		assert.True(t, w.Membership(0))
		assert.False(t, w.Membership(1))
		assert.False(t, w.Membership(2))
	})

	t.Run("width_floor_is_one", func(t *testing.T) {
		w := NewApertureWindow(0)
		w.SetCount(2)
		assert.Equal(t, 1, w.WindowSize())
		w.SetWidth(-5)
		assert.Equal(t, 1, w.WindowSize())
	})

	t.Run("negative_count_treated_as_zero", func(t *testing.T) {
		w := NewApertureWindow(2)
		w.SetCount(-1)
		assert.Equal(t, 0, w.WindowSize())
	})
}
