package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(0, 0)
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)

	p = Normalize(-3, -1)
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestNormalizeClampsLimit(t *testing.T) {
	p := Normalize(2, 1000)
	assert.Equal(t, int64(2), p.Page)
	assert.Equal(t, int64(100), p.Limit)

	p = Normalize(2, 100)
	assert.Equal(t, int64(100), p.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Normalize(1, 10).Offset())
	assert.Equal(t, 10, Normalize(2, 10).Offset())
	assert.Equal(t, 50, Normalize(6, 10).Offset())
	assert.Equal(t, 75, Normalize(4, 25).Offset())
}

func TestNewPagedFullPages(t *testing.T) {
	p := Normalize(1, 10)
	paged := NewPaged([]int{1, 2, 3}, p, 30)
	assert.Equal(t, int64(30), paged.Total)
	assert.Equal(t, int64(3), paged.TotalPages)
	assert.True(t, paged.HasNext)
}

func TestNewPagedRemainderPage(t *testing.T) {
	p := Normalize(3, 10)
	paged := NewPaged([]int{}, p, 25)
	assert.Equal(t, int64(3), paged.TotalPages)
	assert.False(t, paged.HasNext)
}

func TestNewPagedBeyondLastPage(t *testing.T) {
	p := Normalize(9, 10)
	paged := NewPaged([]int{}, p, 25)
	assert.Equal(t, int64(9), paged.Page)
	assert.Equal(t, int64(3), paged.TotalPages)
	assert.False(t, paged.HasNext)
}

func TestNewPagedEmpty(t *testing.T) {
	p := Normalize(1, 10)
	paged := NewPaged([]int{}, p, 0)
	assert.Equal(t, int64(0), paged.Total)
	assert.Equal(t, int64(0), paged.TotalPages)
	assert.False(t, paged.HasNext)
}
