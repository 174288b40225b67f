package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, 0, 3)
	assert.Equal(t, []int{1, 2, 3}, page.Items)
	assert.Equal(t, 0, page.Index)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.Total)

	last := Paginate(items, 2, 3)
	assert.Equal(t, []int{7}, last.Items)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrev())
}

func TestPaginate_ConcatenationPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var all []int
	for i := 0; i < Paginate(items, 0, 2).TotalPages; i++ {
		all = append(all, Paginate(items, i, 2).Items...)
	}
	assert.Equal(t, items, all)
}

func TestPaginate_ClampsIndex(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 10, 2)
	assert.Equal(t, 1, page.Index)
	assert.Equal(t, []int{3}, page.Items)

	page = Paginate(items, -4, 2)
	assert.Equal(t, 0, page.Index)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]int{}, 0, 9)
	require.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.Total)
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}
