package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageParams
		want PageParams
	}{
		{"zero values", PageParams{}, PageParams{Page: 1, Limit: 10}},
		{"negative values", PageParams{Page: -3, Limit: -1}, PageParams{Page: 1, Limit: 10}},
		{"valid values kept", PageParams{Page: 4, Limit: 25}, PageParams{Page: 4, Limit: 25}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.in.Normalize())
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 30, PageParams{Page: 4, Limit: 10}.Offset())
	assert.Equal(t, 75, PageParams{Page: 6, Limit: 15}.Offset())
}

func TestNewPage_NeverReturnsNilData(t *testing.T) {
	page := NewPage[SavedCity](nil, 0, PageParams{Page: 1, Limit: 10})
	assert.NotNil(t, page.Data)
	assert.Len(t, page.Data, 0)
	assert.Equal(t, int64(0), page.Total)
}

func TestNewPage_CarriesParams(t *testing.T) {
	cities := []SavedCity{{ID: "a"}, {ID: "b"}}
	page := NewPage(cities, 42, PageParams{Page: 3, Limit: 2})

	assert.Equal(t, int64(42), page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, cities, page.Data)
}
