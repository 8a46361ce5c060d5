package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tagged struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Hidden string `db:"-"`
	NoTag  string
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, StructTagValues(tagged{}))
	assert.Equal(t, []string{"id", "name"}, StructTagValues(&tagged{}))
}

func TestStructToMap(t *testing.T) {
	m := StructToMap(tagged{ID: 7, Name: "Mercado", Hidden: "x", NoTag: "y"})
	assert.Equal(t, map[string]any{"id": int64(7), "name": "Mercado"}, m)
}

func TestStructOfPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() { StructTagValues(42) })
}
