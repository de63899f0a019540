package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 2, p.CurrentPage)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(3, 10, 25)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPaginationBeyondLastPage(t *testing.T) {
	p := NewPagination(9, 10, 25)
	assert.Equal(t, 9, p.CurrentPage)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.Pages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPaginationNormalisesInput(t *testing.T) {
	p := NewPagination(0, 0, 3)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
